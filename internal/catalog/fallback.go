package catalog

import (
	"greencart/internal"
	"greencart/internal/util"
)

// Fallback is the bundled catalogue of everyday grocery items with
// sustainability heuristics. It serves as the local source of truth whenever
// no remote provider is configured or the remote fetch fails. Names carry
// common Dutch and English labels; categories must map to the category
// vocabulary in the scoring rules.
var Fallback = []internal.CatalogEntry{
	{
		ID:         "bananas",
		Names:      []string{"bananas", "banana", "bananen"},
		BaseScore:  7,
		Categories: []string{"fruit", "imported"},
		Suggestions: []string{
			"🤝 Kies voor Fair Trade bananen wanneer beschikbaar.",
			"🥝 Varieer met lokaal seizoensfruit zoals appels of peren.",
		},
		Notes: util.StringPtr("Bananen zijn tropisch fruit met transportimpact, maar blijven relatief laag in CO₂. Fair Trade verbetert arbeidsomstandigheden."),
	},
	{
		ID:         "fairtrade_bananas",
		Names:      []string{"fair trade bananas", "fairtrade bananas", "bananen fair trade", "fairtrade bananen"},
		BaseScore:  5,
		Categories: []string{"fruit", "imported", "fair_trade"},
		Suggestions: []string{
			"🌍 Mooie keuze! Fair Trade ondersteunt boeren direct.",
			"🥝 Wissel af met lokaal seizoensfruit om transport te beperken.",
		},
		Notes: util.StringPtr("Fair Trade bananen scoren beter dankzij eerlijke handel, al blijft het transport vanuit de tropen nodig."),
	},
	{
		ID:         "apples",
		Names:      []string{"apples", "apple", "appels", "appel"},
		BaseScore:  5,
		Categories: []string{"fruit", "local"},
		Suggestions: []string{
			"🍏 Koop seizoensrassen van Nederlandse telers voor de laagste CO₂.",
			"🍎 Bewaar koel en donker zodat ze langer meegaan.",
		},
		Notes: util.StringPtr("Lokaal fruit met lage emissie en goede houdbaarheid – uitstekend voor duurzame snacks."),
	},
	{
		ID:         "pears",
		Names:      []string{"pears", "peer", "peren"},
		BaseScore:  5,
		Categories: []string{"fruit", "local"},
		Suggestions: []string{
			"🍐 Combineer met noten voor een verzadigende snack.",
			"🥧 Gebruik rijpere peren in baksels om voedselverspilling te voorkomen.",
		},
		Notes: util.StringPtr("Nederlandse peren zijn seizoensgebonden toppers met een kleine footprint."),
	},
	{
		ID:         "oranges",
		Names:      []string{"oranges", "orange", "sinaasappels", "sinaasappel"},
		BaseScore:  7,
		Categories: []string{"fruit", "imported"},
		Suggestions: []string{
			"🍊 Pers zelf sap en gebruik de schil in zesten voor minder verspilling.",
			"🥕 Combineer met wortel in smoothies voor extra vezels.",
		},
		Notes: util.StringPtr("Citrus moet reizen, maar blijft voedzaam. Kies waar mogelijk voor verzending per schip in plaats van vliegtuig."),
	},
	{
		ID:          "strawberries",
		Names:       []string{"strawberries", "strawberry", "aardbeien", "aardbei"},
		BaseScore:   6,
		Categories:  []string{"fruit", "imported"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_emissions", Delta: -1}},
		Suggestions: []string{
			"🍓 Koop in het Nederlandse seizoen of kies diepvries voor lagere footprint.",
			"🍮 Gebruik overrijpe aardbeien in desserts of jam.",
		},
		Notes: util.StringPtr("Buiten het seizoen vragen aardbeien veel energie (kas of transport). Seizoensaankopen zijn aanzienlijk duurzamer."),
	},
	{
		ID:          "blueberries",
		Names:       []string{"blueberries", "blueberry", "blauwe bessen"},
		BaseScore:   6,
		Categories:  []string{"fruit", "imported"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_emissions", Delta: -1}},
		Suggestions: []string{
			"🫐 Kies voor diepvries – vaak duurzamer en net zo voedzaam.",
			"🥣 Strooi over havermout of yoghurt voor een plantaardig ontbijt.",
		},
		Notes: util.StringPtr("Vers ingevlogen bessen hebben een hogere CO₂-voetafdruk; diepvries uit het seizoen is een slimme swap."),
	},
	{
		ID:         "potatoes",
		Names:      []string{"potatoes", "potato", "aardappelen", "aardappel"},
		BaseScore:  5,
		Categories: []string{"vegetable", "local"},
		Suggestions: []string{
			"🥔 Kies voor ongewassen aardappelen om langer te bewaren.",
			"🔥 Rooster met schil voor meer vezels en minder afval.",
		},
		Notes: util.StringPtr("Nederlandse aardappelen zijn goedkoop, lokaal en veelzijdig – een duurzame basis."),
	},
	{
		ID:         "carrots",
		Names:      []string{"carrots", "carrot", "wortels", "wortel", "winterpeen"},
		BaseScore:  5,
		Categories: []string{"vegetable", "local"},
		Suggestions: []string{
			"🥕 Eet rauw als snack of rooster met wat olijfolie.",
			"🥣 Gebruik de loof in pesto om verspilling te verminderen.",
		},
		Notes: util.StringPtr("Peen uit de buurt met lange bewaartijd en lage impact."),
	},
	{
		ID:         "broccoli",
		Names:      []string{"broccoli"},
		BaseScore:  5,
		Categories: []string{"vegetable", "local"},
		Suggestions: []string{
			"🥦 Stoom kort om voedingsstoffen te behouden.",
			"🥗 Gebruik de stronk in soepen of salades.",
		},
		Notes: util.StringPtr("Broccoli uit de regio heeft een lage footprint en zit vol micronutriënten."),
	},
	{
		ID:         "spinach",
		Names:      []string{"spinach", "spinazie"},
		BaseScore:  5,
		Categories: []string{"vegetable", "local"},
		Suggestions: []string{
			"🥬 Kies voor losse bladeren of grootverpakking om plastic te besparen.",
			"🍝 Voeg toe aan pastasaus voor extra groente.",
		},
		Notes: util.StringPtr("Bladgroente met korte keten wanneer in Nederland geteeld."),
	},
	{
		ID:         "cucumber",
		Names:      []string{"cucumber", "komkommer"},
		BaseScore:  5,
		Categories: []string{"vegetable", "local"},
		Suggestions: []string{
			"🥒 Koop onverpakt wanneer mogelijk.",
			"🥗 Voeg toe aan salades of infused water.",
		},
		Notes: util.StringPtr("Lokale kas-komkommers zijn relatief energiezuinig, zeker in het zomerseizoen."),
	},
	{
		ID:         "cucumber_organic",
		Names:      []string{"organic cucumber", "biologische komkommer", "bio komkommer"},
		BaseScore:  2,
		Categories: []string{"vegetable", "local", "organic"},
		Suggestions: []string{
			"🥒 Bewaar in een koele kast (niet té koud) om de versheid te verlengen.",
			"🌱 Ondersteunt biologische teelt met minder pesticiden.",
		},
		Notes: util.StringPtr("Biologische komkommers scoren extra dankzij pesticidevrije teelt."),
	},
	{
		ID:         "lettuce",
		Names:      []string{"lettuce", "sla", "kropsla"},
		BaseScore:  5,
		Categories: []string{"vegetable", "local"},
		Suggestions: []string{
			"🥗 Kies voor losse kroppen i.p.v. voorgesneden zakjes om plastic te beperken.",
			"🌿 Gebruik buitenbladeren in soepen of smoothies.",
		},
		Notes: util.StringPtr("Lokale sla heeft lage impact, zeker wanneer onverpakt."),
	},
	{
		ID:         "tomatoes",
		Names:      []string{"tomatoes", "tomato", "tomaten", "tomaat"},
		BaseScore:  5,
		Categories: []string{"vegetable", "local"},
		Suggestions: []string{
			"🍅 Kies voor seizoens- of buitenteelt tomaten voor de laagste impact.",
			"🍲 Verwerk overrijpe tomaten in soepen of saus.",
		},
		Notes: util.StringPtr("Tomaten uit Nederlandse kassen draaien steeds vaker op geothermie, waardoor de impact daalt."),
	},
	{
		ID:         "cherry_tomatoes",
		Names:      []string{"cherry tomatoes", "tros tomaten", "cherrytomaten"},
		BaseScore:  6,
		Categories: []string{"vegetable", "imported"},
		Suggestions: []string{
			"🍅 Kies voor losse bakjes of herbruikbare zakjes.",
			"🌿 Combineer met basilicum voor een snelle salade.",
		},
		Notes: util.StringPtr("Kleine tomaatjes komen vaker uit het buitenland; kies voor lokale varianten wanneer beschikbaar."),
	},
	{
		ID:         "avocado",
		Names:      []string{"avocado", "avocados", "avocado's"},
		BaseScore:  6,
		Categories: []string{"fruit", "imported"},
		Adjustments: []internal.Adjustment{
			{Code: "trait_high_emissions", Delta: -2},
			{Code: "trait_water_intensive", Delta: -1},
		},
		Suggestions: []string{
			"🥑 Koop kleine hoeveelheden en bewaar correct om verspilling te voorkomen.",
			"🌿 Varieer met lokale smeersels zoals kikkererwtenhummus.",
		},
		Notes: util.StringPtr("Avocado's zijn waterintensief en reizen ver. Geniet bewust en voorkom verspilling."),
	},
	{
		ID:         "oat_milk",
		Names:      []string{"oat milk", "havermelk", "haverdrank"},
		BaseScore:  7,
		Categories: []string{"plant_based"},
		Suggestions: []string{
			"🥛 Plantaardige melk met lage impact – topkeuze!",
			"☕ Gebruik in cappuccino voor een romige schuimlaag.",
		},
		Notes: util.StringPtr("Haverdrank heeft een zeer lage uitstoot en wordt vaak lokaal geproduceerd."),
	},
	{
		ID:         "soy_milk",
		Names:      []string{"soy milk", "sojamelk", "sojadrink", "sojadrank"},
		BaseScore:  7,
		Categories: []string{"plant_based"},
		Suggestions: []string{
			"🥛 Kies bij voorkeur voor Europese sojabonen.",
			"🥣 Combineer met havermout voor een plantaardig ontbijt.",
		},
		Notes: util.StringPtr("Sojadrank heeft een lage impact. Europese sojabonen vermijden ontbossing."),
	},
	{
		ID:          "almond_milk",
		Names:       []string{"almond milk", "amandelmelk", "amandeldrank"},
		BaseScore:   6,
		Categories:  []string{"plant_based", "imported"},
		Adjustments: []internal.Adjustment{{Code: "trait_water_intensive", Delta: -1}},
		Suggestions: []string{
			"🥛 Wissel af met haver- of sojamelk voor een lagere water footprint.",
			"🍪 Gebruik in baksels om zuivel te vermijden.",
		},
		Notes: util.StringPtr("Amandelmelk is plantaardig maar waterintensief. Kies af en toe voor haver of soja."),
	},
	{
		ID:          "cow_milk",
		Names:       []string{"milk", "melk", "volle melk", "halfvolle melk"},
		BaseScore:   5,
		Categories:  []string{"dairy"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_methane", Delta: -2}},
		Suggestions: []string{
			"🥛 Overweeg plantaardige alternatieven zoals haver- of sojamelk.",
			"🧀 Gebruik melk restjes voor pannenkoeken of pap.",
		},
		Notes: util.StringPtr("Koemelk levert voedingsstoffen maar heeft een hogere methaanuitstoot."),
	},
	{
		ID:          "organic_milk",
		Names:       []string{"organic milk", "biologische melk", "bio melk"},
		BaseScore:   4,
		Categories:  []string{"dairy", "organic"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_methane", Delta: -2}},
		Suggestions: []string{
			"🥛 Combineer met plantaardige varianten om impact te verminderen.",
			"🌱 Ondersteunt biologisch veehouden met strengere dierenwelzijnsnormen.",
		},
		Notes: util.StringPtr("Biologische zuivel scoort iets beter door strengere teelteisen, maar blijft methaan-intensief."),
	},
	{
		ID:          "yoghurt",
		Names:       []string{"yoghurt", "yogurt"},
		BaseScore:   5,
		Categories:  []string{"dairy"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_methane", Delta: -1}},
		Suggestions: []string{
			"🥣 Kies voor plantaardige toppings (notenen, zaden, fruit).",
			"🥛 Vervang af en toe door plantaardige yoghurt voor variatie.",
		},
		Notes: util.StringPtr("Zuivel maar vaak lokaal. Plantaardige alternatieven verlagen de impact."),
	},
	{
		ID:          "greek_yoghurt",
		Names:       []string{"greek yoghurt", "griekse yoghurt"},
		BaseScore:   5,
		Categories:  []string{"dairy"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_methane", Delta: -1}},
		Suggestions: []string{
			"🥣 Combineer met fruit en noten voor een vullend ontbijt.",
			"🥛 Wissel af met plantaardige varianten om de footprint te beperken.",
		},
		Notes: util.StringPtr("Extra romig maar nog steeds zuivel-gebaseerd – geniet bewust."),
	},
	{
		ID:          "cheese",
		Names:       []string{"cheese", "kaas", "goudse kaas"},
		BaseScore:   5,
		Categories:  []string{"dairy"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_methane", Delta: -2}},
		Suggestions: []string{
			"🧀 Gebruik kleinere porties en combineer met plantaardige broodbeleg.",
			"🌿 Probeer eens plantaardige kaasalternatieven.",
		},
		Notes: util.StringPtr("Kaas vraagt veel melk en energie. Beperk porties voor een lagere impact."),
	},
	{
		ID:          "butter",
		Names:       []string{"butter", "boter", "roomboter"},
		BaseScore:   5,
		Categories:  []string{"dairy"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_methane", Delta: -2}},
		Suggestions: []string{
			"🧈 Gebruik spaarzaam en wissel af met plantaardige smeersels.",
			"🍞 Kies voor volkorenbrood en beleg rijk met groente.",
		},
		Notes: util.StringPtr("Boter is geconcentreerde zuivelvet met hoge uitstoot."),
	},
	{
		ID:         "margarine",
		Names:      []string{"margarine", "plantaardige margarine"},
		BaseScore:  6,
		Categories: []string{"plant_based"},
		Suggestions: []string{
			"🌿 Controleer palmolie herkomst; kies voor RSPO of palmolievrije varianten.",
			"🍞 Combineer met groenten of hummus voor extra plantaardige voeding.",
		},
		Notes: util.StringPtr("Plantaardige vetten met lagere uitstoot dan boter. Let wel op palmolie."),
	},
	{
		ID:          "eggs_free_range",
		Names:       []string{"free range eggs", "vrije uitloop eieren", "scharreleieren", "eieren"},
		BaseScore:   5,
		Categories:  []string{"egg"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_methane", Delta: -1}},
		Suggestions: []string{
			"🥚 Kies voor keurmerken zoals Beter Leven 2 of 3 sterren.",
			"🥘 Verwerk restjes in frittata om verspilling te vermijden.",
		},
		Notes: util.StringPtr("Eieren hebben een middelmatige footprint; aandacht voor dierenwelzijn maakt verschil."),
	},
	{
		ID:          "eggs_organic",
		Names:       []string{"organic eggs", "biologische eieren"},
		BaseScore:   4,
		Categories:  []string{"egg", "organic"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_methane", Delta: -1}},
		Suggestions: []string{
			"🥚 Gebruik samen met veel groente voor een gebalanceerde maaltijd.",
			"🌱 Biologische houders hebben meer ruimte en biologisch voer.",
		},
		Notes: util.StringPtr("Biologische eieren scoren beter op dierenwelzijn maar houden een dierlijke footprint."),
	},
	{
		ID:         "tofu",
		Names:      []string{"tofu"},
		BaseScore:  7,
		Categories: []string{"plant_based", "plant_protein"},
		Suggestions: []string{
			"🥬 Marineer goed voor extra smaak.",
			"🍜 Gebruik in roerbak of curry als vleesvervanger.",
		},
		Notes: util.StringPtr("Tofu is eiwitrijk, plantaardig en heeft een zeer lage CO₂-voetafdruk."),
	},
	{
		ID:         "tempeh",
		Names:      []string{"tempeh"},
		BaseScore:  7,
		Categories: []string{"plant_based", "plant_protein"},
		Suggestions: []string{
			"🍛 Bak krokant met ketjap en gember.",
			"🥗 Snijd in blokjes voor salades met bite.",
		},
		Notes: util.StringPtr("Gefermenteerde sojabonen met veel vezels en minimale impact."),
	},
	{
		ID:         "plant_based_burger",
		Names:      []string{"plant based burger", "veggie burger", "plantaardige burger"},
		BaseScore:  7,
		Categories: []string{"plant_based", "processed", "plant_protein"},
		Suggestions: []string{
			"🍔 Kies varianten met peulvruchten en weinig verzadigd vet.",
			"🥕 Serveer met veel groente en volkoren brood.",
		},
		Notes: util.StringPtr("Plantaardige burgers scoren beter dan vlees, maar let op het zout- en vetgehalte."),
	},
	{
		ID:          "veggie_sausage",
		Names:       []string{"veggie sausage", "plantaardige worst", "vegetarische worst"},
		BaseScore:   7,
		Categories:  []string{"plant_based", "processed", "plant_protein"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_salt", Delta: -1}},
		Suggestions: []string{
			"🌭 Combineer met groenterijke bijgerechten.",
			"🌿 Kies varianten met betere Nutri-Score waar mogelijk.",
		},
		Notes: util.StringPtr("Nog steeds bewerkt en soms zout, maar aanzienlijk duurzamer dan vleesworst."),
	},
	{
		ID:         "beef_steak",
		Names:      []string{"beef steak", "rundvlees", "biefstuk"},
		BaseScore:  6,
		Categories: []string{"meat"},
		Adjustments: []internal.Adjustment{
			{Code: "trait_high_methane", Delta: -2},
			{Code: "trait_high_emissions", Delta: -2},
		},
		Suggestions: []string{
			"🥩 Beperk porties en kies voor vlees met Beter Leven keurmerk.",
			"🥦 Combineer met extra groente of plantaardige alternatieven.",
		},
		Notes: util.StringPtr("Rundvlees heeft de hoogste klimaatimpact – spaarzaam gebruiken of vervangen."),
	},
	{
		ID:         "minced_beef",
		Names:      []string{"gehakt", "rundergehakt", "minced beef"},
		BaseScore:  6,
		Categories: []string{"meat"},
		Adjustments: []internal.Adjustment{
			{Code: "trait_high_methane", Delta: -2},
			{Code: "trait_high_emissions", Delta: -2},
		},
		Suggestions: []string{
			"🍝 Meng met linzen of champignons voor 50/50 gehakt en lagere footprint.",
			"🌯 Gebruik volkoren wraps en veel groente voor balans.",
		},
		Notes: util.StringPtr("Zelfs gemengd vlees blijft emissie-intensief. Meng met peulvruchten voor winst."),
	},
	{
		ID:          "chicken_breast",
		Names:       []string{"chicken breast", "kipfilet", "kip"},
		BaseScore:   6,
		Categories:  []string{"meat"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_emissions", Delta: -1}},
		Suggestions: []string{
			"🍗 Kies voor beter leven keurmerken voor beter dierenwelzijn.",
			"🥗 Vervang regelmatig door tofu of tempeh om impact te verlagen.",
		},
		Notes: util.StringPtr("Kip heeft lagere emissies dan rund, maar plantaardige alternatieven scoren nog beter."),
	},
	{
		ID:          "pork_chop",
		Names:       []string{"pork chop", "varkensvlees", "karbonade"},
		BaseScore:   6,
		Categories:  []string{"meat"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_emissions", Delta: -1}},
		Suggestions: []string{
			"🥩 Kies voor Beter Leven 2 of 3 sterren voor betere levensstandaarden.",
			"🥕 Combineer met veel groente voor balans.",
		},
		Notes: util.StringPtr("Varkensvlees heeft een middelhoge uitstoot – beperk porties."),
	},
	{
		ID:          "salmon",
		Names:       []string{"salmon", "zalm"},
		BaseScore:   6,
		Categories:  []string{"seafood", "imported"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_emissions", Delta: -1}},
		Suggestions: []string{
			"🐟 Kies voor ASC- of MSC-gecertificeerde zalm.",
			"🥦 Vervang af en toe door peulvruchten voor lagere impact.",
		},
		Notes: util.StringPtr("Zalm is voedzaam maar mede door voer en transport niet klimaatneutraal."),
	},
	{
		ID:          "tuna_canned",
		Names:       []string{"tuna", "tonijn", "blik tonijn", "canned tuna"},
		BaseScore:   5,
		Categories:  []string{"seafood"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_emissions", Delta: -1}},
		Suggestions: []string{
			"🐟 Kies voor MSC-keurmerk en vangst met geringe bijvangst.",
			"🥗 Gebruik met veel groente in salades.",
		},
		Notes: util.StringPtr("Tonijn heeft druk op bestanden; kies MSC en gebruik met mate."),
	},
	{
		ID:          "shrimp",
		Names:       []string{"shrimp", "garnalen"},
		BaseScore:   6,
		Categories:  []string{"seafood", "imported"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_emissions", Delta: -2}},
		Suggestions: []string{
			"🦐 Kies voor ASC-gecertificeerde Europese garnalen.",
			"🥗 Vervang vaker door plantaardige opties zoals kikkererwten.",
		},
		Notes: util.StringPtr("Garnalenkweek is energie-intensief; beter als luxe product."),
	},
	{
		ID:          "chocolate",
		Names:       []string{"chocolate", "chocolade", "chocolate bar"},
		BaseScore:   5,
		Categories:  []string{"snack", "processed"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_sugar", Delta: -1}},
		Suggestions: []string{
			"🍫 Kies voor kleinere porties en deel met anderen.",
			"🤝 Ga voor Fair Trade of Tony's Chocolonely voor betere ketens.",
		},
		Notes: util.StringPtr("Chocolade is energie- en suikerintensief. Fair Trade en kleine porties helpen."),
	},
	{
		ID:          "chocolate_fairtrade",
		Names:       []string{"fair trade chocolate", "fairtrade chocolade", "tony's chocolade"},
		BaseScore:   5,
		Categories:  []string{"snack", "processed", "fair_trade"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_sugar", Delta: -1}},
		Suggestions: []string{
			"🍫 Mooie keuze – let nog steeds op portiegrootte.",
			"☕ Combineer met een kop thee i.p.v. suikerhoudende frisdrank.",
		},
		Notes: util.StringPtr("Eerlijke chocolade helpt boeren, al blijft suiker de beperkende factor."),
	},
	{
		ID:          "chips",
		Names:       []string{"chips", "crisps", "aardappelschips"},
		BaseScore:   4,
		Categories:  []string{"snack", "processed"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_salt", Delta: -1}},
		Suggestions: []string{
			"🥔 Kies ovengebakken varianten of maak zelf chips in de oven.",
			"🥕 Serveer met groentesticks om te variëren.",
		},
		Notes: util.StringPtr("Chips zijn sterk bewerkt en zout – geniet met mate."),
	},
	{
		ID:          "soda",
		Names:       []string{"soda", "frisdrank", "cola"},
		BaseScore:   4,
		Categories:  []string{"beverage", "processed"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_sugar", Delta: -1}},
		Suggestions: []string{
			"🥤 Schakel over op bruiswater met fruit voor minder suiker.",
			"🍋 Voeg citroen of munt toe voor smaak zonder calorieën.",
		},
		Notes: util.StringPtr("Suikerhoudende frisdrank heeft lage voedingswaarde en vraagt veel vervoer."),
	},
	{
		ID:         "sparkling_water",
		Names:      []string{"sparkling water", "bruiswater", "spa rood"},
		BaseScore:  6,
		Categories: []string{"beverage"},
		Suggestions: []string{
			"💧 Gebruik een herbruikbare fles of sodastream om vervoer en plastic te beperken.",
			"🍋 Voeg citroen of komkommer toe voor smaak.",
		},
		Notes: util.StringPtr("Mineraalwater zonder suiker; hergebruikbare flessen maken het nóg duurzamer."),
	},
	{
		ID:         "pasta",
		Names:      []string{"pasta", "spaghetti", "penne"},
		BaseScore:  5,
		Categories: []string{"grain", "processed"},
		Suggestions: []string{
			"🍝 Kies voor volkoren varianten voor meer vezels.",
			"🥦 Combineer met groenterijke sauzen om het gerecht te verduurzamen.",
		},
		Notes: util.StringPtr("Pasta heeft een matige footprint; volkorenvarianten leveren meer voedingswaarde."),
	},
	{
		ID:          "rice",
		Names:       []string{"rice", "rijst"},
		BaseScore:   5,
		Categories:  []string{"grain", "imported"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_methane", Delta: -1}},
		Suggestions: []string{
			"🍚 Kies voor gecertificeerde rijst met lagere watervoetafdruk (bijv. PlanetProof).",
			"🫘 Combineer met peulvruchten en veel groente.",
		},
		Notes: util.StringPtr("Natrijstteelt stoot methaan uit; kies voor duurzame certificering of alternatieven zoals quinoa."),
	},
	{
		ID:         "quinoa",
		Names:      []string{"quinoa"},
		BaseScore:  6,
		Categories: []string{"grain", "imported", "plant_protein"},
		Suggestions: []string{
			"🥗 Kies bij voorkeur Europese quinoa (bijv. Nederlandse teelt).",
			"🍲 Combineer met bonen en groenten voor een complete maaltijd.",
		},
		Notes: util.StringPtr("Quinoa is voedzaam en vaak eerlijk verhandeld; let op herkomst om lokale boeren te steunen."),
	},
	{
		ID:         "lentils",
		Names:      []string{"lentils", "linzen"},
		BaseScore:  7,
		Categories: []string{"plant_based", "legume", "plant_protein"},
		Suggestions: []string{
			"🫘 Gebruik als basis voor soepen, curries of salades.",
			"🍛 Combineer met volkoren granen voor volledige eiwitten.",
		},
		Notes: util.StringPtr("Linzen zijn peulvruchten met hoge voedingswaarde en lage footprint – topkeuze."),
	},
	{
		ID:         "chickpeas",
		Names:      []string{"chickpeas", "kikkererwten"},
		BaseScore:  7,
		Categories: []string{"plant_based", "legume", "plant_protein"},
		Suggestions: []string{
			"🥙 Maak zelf hummus of falafel als vleesvrij alternatief.",
			"🥗 Voeg crunch toe door kikkererwten te roosteren.",
		},
		Notes: util.StringPtr("Kikkererwten leveren eiwitten en vezels met minimale impact."),
	},
	{
		ID:          "frozen_pizza",
		Names:       []string{"frozen pizza", "diepvriespizza"},
		BaseScore:   4,
		Categories:  []string{"processed"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_salt", Delta: -1}},
		Suggestions: []string{
			"🍕 Voeg extra groente toe en kies voor vegetarische varianten.",
			"🥗 Serveer met een slaatje om het gerecht te balanceren.",
		},
		Notes: util.StringPtr("Kant-en-klare pizza is handig maar bevat weinig groente en veel zout."),
	},
	{
		ID:          "ready_meal",
		Names:       []string{"ready meal", "magnetronmaaltijd", "kant en klare maaltijd"},
		BaseScore:   4,
		Categories:  []string{"processed"},
		Adjustments: []internal.Adjustment{{Code: "trait_high_salt", Delta: -1}},
		Suggestions: []string{
			"🍽️ Voeg extra groente toe of kies voor koelverse varianten met Nutri-Score A/B.",
			"🥗 Maak zelf een batch-kook recept voor een gezonder alternatief.",
		},
		Notes: util.StringPtr("Handig maar vaak zout en minder voedzaam; maak thuis een upgrade met verse groente."),
	},
}
