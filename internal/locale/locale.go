package locale

// Supported language codes.
const (
	LangEN = "en"
	LangFR = "fr"
)

// DefaultLanguage is used until a visitor picks otherwise.
const DefaultLanguage = LangEN

// dictionaries is the static translation table. There is no pluralization
// or interpolation, just plain key lookup.
var dictionaries = map[string]map[string]string{
	LangEN: {
		"nav.home":              "Home",
		"nav.products":          "Products",
		"nav.cart":              "Cart",
		"nav.wishlist":          "Wishlist",
		"nav.checkout":          "Checkout",
		"cart.title":            "Your Cart",
		"cart.empty":            "Your cart is empty",
		"cart.added":            "Added to cart",
		"cart.removed":          "Removed from cart",
		"cart.total":            "Total",
		"wishlist.title":        "Your Wishlist",
		"wishlist.added":        "Added to wishlist",
		"wishlist.removed":      "Removed from wishlist",
		"checkout.shipping":     "Shipping",
		"checkout.payment":      "Payment",
		"checkout.confirmation": "Order confirmed",
		"checkout.back":         "Back",
		"checkout.delivery":     "Delivery method",
		"checkout.home":         "Home delivery",
		"checkout.pickup":       "Warehouse pickup",
		"payment.failed":        "Payment failed",
		"payment.processing":    "Processing payment",
		"directory.cities":      "Could not load cities",
		"directory.quarters":    "Could not load quarters",
		"product.outOfStock":    "Out of stock",
		"product.addToCart":     "Add to cart",
	},
	LangFR: {
		"nav.home":              "Accueil",
		"nav.products":          "Produits",
		"nav.cart":              "Panier",
		"nav.wishlist":          "Favoris",
		"nav.checkout":          "Paiement",
		"cart.title":            "Votre panier",
		"cart.empty":            "Votre panier est vide",
		"cart.added":            "Ajouté au panier",
		"cart.removed":          "Retiré du panier",
		"cart.total":            "Total",
		"wishlist.title":        "Vos favoris",
		"wishlist.added":        "Ajouté aux favoris",
		"wishlist.removed":      "Retiré des favoris",
		"checkout.shipping":     "Livraison",
		"checkout.payment":      "Paiement",
		"checkout.confirmation": "Commande confirmée",
		"checkout.back":         "Retour",
		"checkout.delivery":     "Mode de livraison",
		"checkout.home":         "Livraison à domicile",
		"checkout.pickup":       "Retrait en entrepôt",
		"payment.failed":        "Échec du paiement",
		"payment.processing":    "Paiement en cours",
		"directory.cities":      "Impossible de charger les villes",
		"directory.quarters":    "Impossible de charger les quartiers",
		"product.outOfStock":    "Rupture de stock",
		"product.addToCart":     "Ajouter au panier",
	},
}

// T resolves key in lang, falling back to the key itself when unmapped so
// a missing translation never breaks rendering.
func T(lang, key string) string {
	if dict, ok := dictionaries[lang]; ok {
		if v, ok := dict[key]; ok {
			return v
		}
	}
	return key
}

// Supported reports whether lang has a dictionary.
func Supported(lang string) bool {
	_, ok := dictionaries[lang]
	return ok
}
