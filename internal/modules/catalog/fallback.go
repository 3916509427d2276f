package catalog

// fallbackProducts is the static catalog served when the fulfillment
// provider is not configured or unreachable. The collectible sticker series
// ships on every tenant.
var fallbackProducts = []*Product{
	{
		ID:          "gitislife-sticker-pack",
		Name:        "Git is Life Sticker Pack",
		Price:       1299,
		Description: "Premium vinyl sticker pack featuring the Git is Life logo in multiple sizes. Waterproof, UV resistant. Perfect for laptops, helmets, water bottles, lockers. Collectible series - collect all domains!",
		Category:    "stickers",
		Sizes:       []string{"Pack of 10"},
		Colors:      []string{"Full Color"},
		Details: []string{
			"Waterproof vinyl",
			"UV resistant",
			`Multiple sizes included (1", 2", 3")`,
			"Durable adhesive",
			"Collectible series - collect all domains!",
		},
		FulfillmentProductID: 401,
		DesignURL:            "/git-islife-stickers.webp",
	},
	{
		ID:          "git-is-life-tee",
		Name:        "Git is Life T-Shirt",
		Price:       2999,
		Description: "Wear the philosophy. Git is Life, Git is Forever, Git is Eternal.",
		Category:    "apparel",
		Sizes:       []string{"S", "M", "L", "XL", "2XL"},
		Colors:      []string{"Black", "White", "Navy"},
		Details: []string{
			"100% ring-spun cotton",
			"Printed on demand",
			"Custom phrase available",
		},
		FulfillmentProductID: 71,
		DesignURL:            "/designs/git-is-life-design.png",
	},
}
