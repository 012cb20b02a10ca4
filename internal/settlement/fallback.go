package settlement

// fallbackNames is the compiled-in settlement list served when both the
// cache and the upstream source are unavailable. It covers the county
// seats and the towns the directory actually has entries for, pre-sorted
// by Hungarian collation.
var fallbackNames = []string{
	"Baja",
	"Balatonfüred",
	"Békéscsaba",
	"Budapest",
	"Cegléd",
	"Debrecen",
	"Dunaújváros",
	"Eger",
	"Esztergom",
	"Gödöllő",
	"Győr",
	"Gyula",
	"Hajdúszoboszló",
	"Hévíz",
	"Hódmezővásárhely",
	"Kaposvár",
	"Kecskemét",
	"Keszthely",
	"Miskolc",
	"Mosonmagyaróvár",
	"Nagykanizsa",
	"Nyíregyháza",
	"Pápa",
	"Pécs",
	"Salgótarján",
	"Siófok",
	"Sopron",
	"Szeged",
	"Székesfehérvár",
	"Szekszárd",
	"Szentendre",
	"Szolnok",
	"Szombathely",
	"Tatabánya",
	"Tihany",
	"Vác",
	"Veszprém",
	"Visegrád",
	"Zalaegerszeg",
}

// fallbackSettlements returns a fresh copy so callers can't mutate the
// package-level list.
func fallbackSettlements() []string {
	names := make([]string, len(fallbackNames))
	copy(names, fallbackNames)
	return names
}
