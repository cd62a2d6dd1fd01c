package classifier

import "testing"

func TestClassifyItem_RuleLadder(t *testing.T) {
	tests := []struct {
		name string
		item string
		want Verdict
	}{
		{
			name: "explicit_vegan_label",
			item: "Vegan burger with fries $5.99",
			want: Verdict{IsVegan: true, IsVegetarian: true, Reason: "explicitly labeled vegan"},
		},
		{
			name: "plant_based_label",
			item: "Plant-based meatballs $11.50",
			want: Verdict{IsVegan: true, IsVegetarian: true, Reason: "explicitly labeled vegan"},
		},
		{
			name: "explicit_vegetarian_label",
			item: "Veggie lasagna with ricotta $13.00",
			want: Verdict{IsVegan: false, IsVegetarian: true, Reason: "explicitly labeled vegetarian"},
		},
		{
			name: "no_animal_terms",
			item: "Caesar salad $12.99",
			want: Verdict{IsVegan: true, IsVegetarian: true, Reason: "no animal products detected"},
		},
		{
			name: "dairy_but_no_meat",
			item: "Mac and cheese $8.99",
			want: Verdict{IsVegan: false, IsVegetarian: true, Reason: "no meat detected, may contain dairy/eggs"},
		},
		{
			name: "contains_meat",
			item: "Grilled chicken $15.99",
			want: Verdict{IsVegan: false, IsVegetarian: false, Reason: "contains meat"},
		},
		{
			name: "generic_fish_term_is_meat",
			item: "Fish and chips $14.00",
			want: Verdict{IsVegan: false, IsVegetarian: false, Reason: "contains meat"},
		},
		{
			// "salmon" is on the non-vegan list but not the narrower
			// meat list, so it lands on the dairy/eggs rule. A known
			// quirk of the lexicons, preserved deliberately.
			name: "specific_fish_name_misses_meat_list",
			item: "Pan-seared salmon fillet $22.00",
			want: Verdict{IsVegan: false, IsVegetarian: true, Reason: "no meat detected, may contain dairy/eggs"},
		},
		{
			name: "case_insensitive",
			item: "GRILLED CHICKEN SANDWICH $10.99",
			want: Verdict{IsVegan: false, IsVegetarian: false, Reason: "contains meat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyItem(tt.item)
			if got != tt.want {
				t.Errorf("ClassifyItem(%q) = %+v, want %+v", tt.item, got, tt.want)
			}
		})
	}
}

// An explicit vegan label pre-empts the ingredient scan: rule 1 wins
// even when a meat term appears in the same line.
func TestClassifyItem_VeganLabelPreemptsIngredients(t *testing.T) {
	got := ClassifyItem("Vegan chicken-style seitan $9.00")

	if !got.IsVegan {
		t.Errorf("expected IsVegan=true, got %+v", got)
	}
	if got.Reason != "explicitly labeled vegan" {
		t.Errorf("expected reason %q, got %q", "explicitly labeled vegan", got.Reason)
	}
}

func TestClassifyItem_VeganImpliesVegetarian(t *testing.T) {
	// The invariant must hold across every kind of input, including
	// ones designed to hit each rule of the ladder.
	items := []string{
		"Vegan burger $5.99",
		"Veggie wrap $7.50",
		"Caesar salad $12.99",
		"Mac and cheese $8.99",
		"Grilled chicken $15.99",
		"Vegan chicken-style seitan $9.00",
		"",
		"cheese cheese cheese",
		"bacon egg and cheese on a roll 4.50",
	}

	for _, item := range items {
		v := ClassifyItem(item)
		if v.IsVegan && !v.IsVegetarian {
			t.Errorf("ClassifyItem(%q): IsVegan without IsVegetarian: %+v", item, v)
		}
	}
}

func TestClassifyItem_Total(t *testing.T) {
	// Never panics, always yields a non-empty reason.
	for _, item := range []string{"", " ", "123", "日本語のメニュー ¥500"} {
		v := ClassifyItem(item)
		if v.Reason == "" {
			t.Errorf("ClassifyItem(%q) returned empty reason", item)
		}
	}
}
