package directory

// City is one selectable shipping city.
type City struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Quarter is a city-scoped address quarter. CityValue ties it to exactly
// one city; a quarter must never be submitted against another city.
type Quarter struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	CityValue string `json:"cityValue"`
}

// fallbackCities is served whenever the remote directory is unreachable.
// Checkout must stay usable without the directory.
var fallbackCities = []City{
	{Value: "douala", Label: "Douala"},
	{Value: "yaounde", Label: "Yaoundé"},
	{Value: "bafoussam", Label: "Bafoussam"},
	{Value: "bamenda", Label: "Bamenda"},
	{Value: "garoua", Label: "Garoua"},
	{Value: "maroua", Label: "Maroua"},
	{Value: "ngaoundere", Label: "Ngaoundéré"},
	{Value: "bertoua", Label: "Bertoua"},
	{Value: "buea", Label: "Buea"},
	{Value: "kribi", Label: "Kribi"},
}

// fallbackQuarters covers the major cities; other cities fall back to a
// generic quarter list scoped to the requested city.
var fallbackQuarters = map[string][]Quarter{
	"douala": {
		{Value: "akwa", Label: "Akwa", CityValue: "douala"},
		{Value: "bonanjo", Label: "Bonanjo", CityValue: "douala"},
		{Value: "bonapriso", Label: "Bonapriso", CityValue: "douala"},
		{Value: "deido", Label: "Deïdo", CityValue: "douala"},
		{Value: "makepe", Label: "Makepe", CityValue: "douala"},
		{Value: "bonaberi", Label: "Bonabéri", CityValue: "douala"},
	},
	"yaounde": {
		{Value: "bastos", Label: "Bastos", CityValue: "yaounde"},
		{Value: "mvan", Label: "Mvan", CityValue: "yaounde"},
		{Value: "nlongkak", Label: "Nlongkak", CityValue: "yaounde"},
		{Value: "mvog-mbi", Label: "Mvog-Mbi", CityValue: "yaounde"},
		{Value: "essos", Label: "Essos", CityValue: "yaounde"},
		{Value: "biyem-assi", Label: "Biyem-Assi", CityValue: "yaounde"},
	},
	"bafoussam": {
		{Value: "centre-ville", Label: "Centre-ville", CityValue: "bafoussam"},
		{Value: "tamdja", Label: "Tamdja", CityValue: "bafoussam"},
		{Value: "djeleng", Label: "Djeleng", CityValue: "bafoussam"},
	},
	"bamenda": {
		{Value: "commercial-avenue", Label: "Commercial Avenue", CityValue: "bamenda"},
		{Value: "nkwen", Label: "Nkwen", CityValue: "bamenda"},
		{Value: "mankon", Label: "Mankon", CityValue: "bamenda"},
	},
}

func genericQuarters(cityValue string) []Quarter {
	if q, ok := fallbackQuarters[cityValue]; ok {
		out := make([]Quarter, len(q))
		copy(out, q)
		return out
	}
	return []Quarter{
		{Value: "centre", Label: "Centre", CityValue: cityValue},
		{Value: "marche", Label: "Marché", CityValue: cityValue},
		{Value: "gare", Label: "Gare routière", CityValue: cityValue},
	}
}
