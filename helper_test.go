package skins

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// usd returns a pointer to USD(v).
func usd(v float64) *Money {
	m := USD(v)
	return &m
}

// day returns a pointer to the parsed date.
func day(s string) *Date {
	d := MustParse(s)
	return &d
}

// weapon is a helper to create a valid weapon item, without buy information.
func weapon(typ, name string, latest float64, checked string) Item {
	return Item{
		Rarity:     Classified,
		Type:       typ,
		Name:       name,
		Wear:       "Field-Tested",
		Categories: []string{"Type", WeaponCategory},
		CheckedOn:  MustParse(checked),
		Latest:     usd(latest),
	}
}

// bought returns a copy of it with a buy price and date.
func bought(it Item, price float64, on string) Item {
	it.BuyPrice = usd(price)
	it.BoughtOn = day(on)
	return it
}
