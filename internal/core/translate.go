package core

// translate.go holds the static vocabulary of the source workbook: which
// French column headers map to which canonical column names, and which
// French job titles map to which canonical positions.
//
// Column renaming is total for mapped headers; headers absent from the
// mapping pass through unchanged (lowercased), so unexpected columns are
// tolerated rather than silently dropped. They are simply never read by
// the normalizer.
//
// Position translation is partial: an unmapped label yields ok=false,
// which the employee normalizer treats as batch-fatal.

import "strings"

// columnMappings maps lowercased source headers to canonical column
// names, per entity.
var columnMappings = map[Entity]map[string]string{
	EntityRestaurant: {
		"nom":     "name",
		"adresse": "address",
	},
	EntityDish: {
		"nom":  "name",
		"prix": "price",
	},
	EntityEmployee: {
		"nom":           "last_name",
		"prénom":        "first_name",
		"poste":         "position",
		"restaurant":    "restaurant",
		"date_embauche": "hiring_date",
		"salaire":       "salary",
	},
	EntitySupplier: {
		"nom":       "name",
		"email":     "email",
		"téléphone": "phone",
		"adresse":   "address",
	},
	EntityClient: {
		"nom":              "last_name",
		"prénom":           "first_name",
		"email":            "email",
		"téléphone":        "phone",
		"date_inscription": "inscription_date",
		"date_commande":    "order_date",
		"montant_total":    "total_amount",
	},
	EntityDelivery: {
		"nom_produit":    "product_name",
		"quantité":       "quantity",
		"date_livraison": "delivery_date",
	},
}

// Orders are derived from the client sheets, so they share the client
// column vocabulary.
func init() {
	columnMappings[EntityOrder] = columnMappings[EntityClient]
}

// Canonical position values. The employee table accepts exactly these.
const (
	PositionWaiter     = "WAITER"
	PositionCook       = "COOK"
	PositionHeadCook   = "HEAD COOK"
	PositionManager    = "MANAGER"
	PositionDishwasher = "DISHWASHER"
)

// positionMapping translates source job titles to the canonical
// enumeration.
var positionMapping = map[string]string{
	"serveur":        PositionWaiter,
	"cuisinier":      PositionCook,
	"chef cuisinier": PositionHeadCook,
	"responsable":    PositionManager,
	"plongeur":       PositionDishwasher,
}

// CanonicalHeader renames a source header row into canonical column
// names for the given entity. Unmapped headers are passed through
// lowercased.
func CanonicalHeader(entity Entity, header []string) []string {
	mapping := columnMappings[entity]
	out := make([]string, len(header))
	for i, h := range header {
		key := strings.ToLower(CleanCell(h))
		if canonical, ok := mapping[key]; ok {
			out[i] = canonical
			continue
		}
		out[i] = key
	}
	return out
}

// TranslatePosition maps a source job title to its canonical value.
// Matching is case-insensitive. ok=false means the label is not part of
// the fixed enumeration.
func TranslatePosition(label string) (string, bool) {
	canonical, ok := positionMapping[strings.ToLower(CleanCell(label))]
	return canonical, ok
}
