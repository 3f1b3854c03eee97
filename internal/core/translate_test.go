package core

import (
	"reflect"
	"testing"
)

func TestCanonicalHeader(t *testing.T) {
	tests := []struct {
		name   string
		entity Entity
		header []string
		want   []string
	}{
		{
			name:   "restaurant roster",
			entity: EntityRestaurant,
			header: []string{"nom", "adresse"},
			want:   []string{"name", "address"},
		},
		{
			name:   "menu",
			entity: EntityDish,
			header: []string{"nom", "prix"},
			want:   []string{"name", "price"},
		},
		{
			name:   "employee roster with mixed case",
			entity: EntityEmployee,
			header: []string{"Nom", "Prénom", "Poste", "Restaurant", "Date_Embauche", "Salaire"},
			want:   []string{"last_name", "first_name", "position", "restaurant", "hiring_date", "salary"},
		},
		{
			name:   "client sheet carries order columns",
			entity: EntityClient,
			header: []string{"Nom", "Prénom", "Email", "Téléphone", "Date_Inscription", "Date_Commande", "Montant_Total"},
			want:   []string{"last_name", "first_name", "email", "phone", "inscription_date", "order_date", "total_amount"},
		},
		{
			name:   "supplier roster",
			entity: EntitySupplier,
			header: []string{"nom", "email", "téléphone", "adresse"},
			want:   []string{"name", "email", "phone", "address"},
		},
		{
			name:   "stock sheet",
			entity: EntityDelivery,
			header: []string{"nom_produit", "quantité", "date_livraison"},
			want:   []string{"product_name", "quantity", "delivery_date"},
		},
		{
			name:   "unexpected column passes through lowercased",
			entity: EntityDish,
			header: []string{"nom", "prix", "Calories"},
			want:   []string{"name", "price", "calories"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanonicalHeader(tt.entity, tt.header)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CanonicalHeader(%s, %v) = %v, want %v", tt.entity, tt.header, got, tt.want)
			}
		})
	}
}

func TestTranslatePosition(t *testing.T) {
	tests := []struct {
		label  string
		want   string
		wantOK bool
	}{
		{"Serveur", PositionWaiter, true},
		{"Cuisinier", PositionCook, true},
		{"Chef Cuisinier", PositionHeadCook, true},
		{"Responsable", PositionManager, true},
		{"Plongeur", PositionDishwasher, true},
		{"plongeur", PositionDishwasher, true},
		{" SERVEUR ", PositionWaiter, true},
		{"Barman", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := TranslatePosition(tt.label)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("TranslatePosition(%q) = %q, %v; want %q, %v", tt.label, got, ok, tt.want, tt.wantOK)
		}
	}
}
