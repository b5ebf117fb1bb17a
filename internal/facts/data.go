package facts

import "github.com/lusakalabs/crucible/internal/model"

// BuiltinFacts returns the builtin Zambian ground-truth dataset (2025-2026).
// Statements, sources, and effective dates are curated from published
// regulatory schedules; severity reflects how badly a plan breaks when the
// fact contradicts one of its assumptions.
func BuiltinFacts() []model.Fact {
	return []model.Fact{
		// TAX
		{
			ID:            "TAX-001",
			Category:      model.CategoryTax,
			Statement:     "Turnover Tax (TOT) applies to businesses with annual turnover <= ZMW 5,000,000 at a flat rate of 5% on gross revenue. No deductions for expenses are allowed under TOT.",
			Keywords:      []string{"turnover", "tax", "tot", "revenue", "small business", "5%", "zmw"},
			Severity:      model.SeverityModerate,
			Source:        "Zambia Revenue Authority - 2025 Tax Guide",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "TAX-002",
			Category:      model.CategoryTax,
			Statement:     "Corporate Income Tax (CIT) standard rate is 30%. Manufacturing and farming enjoy a reduced rate of 10-15%. Companies must register for CIT if turnover exceeds ZMW 5,000,000.",
			Keywords:      []string{"corporate", "income", "tax", "cit", "30%", "manufacturing", "farming"},
			Severity:      model.SeverityModerate,
			Source:        "Income Tax Act Cap 323 - 2025 Amendments",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "TAX-003",
			Category:      model.CategoryTax,
			Statement:     "Rental Income Tax is 16% of gross rental income for individuals. No deductions for mortgage interest or maintenance are permitted.",
			Keywords:      []string{"rental", "income", "tax", "property", "16%", "landlord"},
			Severity:      model.SeverityInformational,
			Source:        "ZRA Practice Note - Property Income 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "TAX-004",
			Category:      model.CategoryTax,
			Statement:     "Property Transfer Tax (PTT) is 8% of the open market value on transfer of land, shares, or mining rights.",
			Keywords:      []string{"property", "transfer", "tax", "ptt", "8%", "land", "shares", "mining rights"},
			Severity:      model.SeverityModerate,
			Source:        "Property Transfer Tax Act - 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "TAX-005",
			Category:      model.CategoryTax,
			Statement:     "Withholding Tax on dividends paid to non-residents is 20%. For residents, it is 15%. Double Taxation Agreements may reduce rates for treaty countries.",
			Keywords:      []string{"withholding", "tax", "dividend", "non-resident", "20%", "15%"},
			Severity:      model.SeverityModerate,
			Source:        "Income Tax Act - WHT Schedule 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "TAX-006",
			Category:      model.CategoryTax,
			Statement:     "VAT standard rate is 16% on taxable supplies. Essential foodstuffs (mealie meal, fresh vegetables, milk) are zero-rated. VAT registration threshold is ZMW 800,000 annual turnover.",
			Keywords:      []string{"vat", "16%", "value added", "tax", "zero-rated", "registration", "threshold"},
			Severity:      model.SeverityModerate,
			Source:        "Value Added Tax Act - 2025",
			EffectiveDate: "2025-01-01",
		},

		// ENERGY
		{
			ID:            "ENERGY-001",
			Category:      model.CategoryEnergy,
			Statement:     "Fuel pump prices as of Q1 2025: Petrol K29.92/litre, Diesel K25.11/litre. Prices are set by the Energy Regulation Board and adjusted monthly based on international crude oil prices and the ZMW/USD exchange rate.",
			Keywords:      []string{"fuel", "petrol", "diesel", "price", "erb", "energy", "pump"},
			Severity:      model.SeverityInformational,
			Source:        "Energy Regulation Board - Q1 2025 Price Schedule",
			EffectiveDate: "2025-01-15",
		},
		{
			ID:            "ENERGY-002",
			Category:      model.CategoryEnergy,
			Statement:     "Fuel price volatility: 5-8% monthly fluctuations are normal. Any business plan assuming fixed fuel costs will face significant variance. Hedging instruments are not widely available in Zambia.",
			Keywords:      []string{"fuel", "volatility", "price", "fluctuation", "hedging", "diesel", "petrol"},
			Severity:      model.SeverityModerate,
			Source:        "ERB Historical Price Analysis 2023-2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "ENERGY-003",
			Category:      model.CategoryEnergy,
			Statement:     "Load-shedding risk: ZESCO implements scheduled power cuts during low-water years. Kariba Dam levels critically low in 2024-2025. Businesses must budget for generator/solar backup at ~ZMW 15-25/kWh vs grid rate of ~ZMW 1.50/kWh.",
			Keywords:      []string{"electricity", "load-shedding", "power", "zesco", "generator", "solar", "kariba"},
			Severity:      model.SeveritySevere,
			Source:        "ZESCO Load Management Schedule 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "ENERGY-004",
			Category:      model.CategoryEnergy,
			Statement:     "Probability of a >15% fuel price shock within any 6-month window is approximately 10%, driven by global crude movements and kwacha depreciation events.",
			Keywords:      []string{"fuel", "shock", "price", "risk", "crude", "kwacha", "depreciation"},
			Severity:      model.SeverityModerate,
			Source:        "BoZ Commodity Risk Assessment 2025",
			EffectiveDate: "2025-01-01",
		},

		// FINANCE
		{
			ID:            "FINANCE-001",
			Category:      model.CategoryFinance,
			Statement:     "Bank of Zambia policy rate: 14.5% as of Q1 2025. The Monetary Policy Committee meets quarterly and has signaled a cautious tightening bias.",
			Keywords:      []string{"interest", "rate", "boz", "policy", "monetary", "bank of zambia"},
			Severity:      model.SeverityInformational,
			Source:        "Bank of Zambia - Monetary Policy Statement Q1 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "FINANCE-002",
			Category:      model.CategoryFinance,
			Statement:     "Commercial bank lending rates range from 24-32% for SME loans. Collateral requirements typically 150-200% of loan value. Average loan processing time: 4-8 weeks.",
			Keywords:      []string{"lending", "rate", "loan", "bank", "sme", "collateral", "interest", "financing"},
			Severity:      model.SeverityModerate,
			Source:        "Bankers Association of Zambia - Lending Survey 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "FINANCE-003",
			Category:      model.CategoryFinance,
			Statement:     "Headline inflation rate: ~11% year-on-year (Q1 2025). Food inflation higher at ~14%. Core inflation (excluding food and energy) at ~8.5%.",
			Keywords:      []string{"inflation", "cpi", "food", "prices", "cost", "zamstat"},
			Severity:      model.SeverityModerate,
			Source:        "Zambia Statistics Agency - CPI Report January 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "FINANCE-004",
			Category:      model.CategoryFinance,
			Statement:     "ZMW/USD exchange rate: approximately ZMW 27-29 per USD (Q1 2025). The kwacha has depreciated ~15% over the past 12 months. Forward cover is expensive at 8-12% premium.",
			Keywords:      []string{"exchange", "rate", "kwacha", "usd", "dollar", "forex", "currency", "depreciation"},
			Severity:      model.SeverityModerate,
			Source:        "Bank of Zambia - Exchange Rate Bulletin 2025",
			EffectiveDate: "2025-01-01",
		},

		// LOGISTICS
		{
			ID:            "LOGISTICS-001",
			Category:      model.CategoryLogistics,
			Statement:     "La Nina weather pattern confirmed for Q1-Q2 2025. Expect above-average rainfall causing flooding in Western, Southern, and Luapula provinces. Historical flood events disrupt roads for 2-6 weeks.",
			Keywords:      []string{"flood", "rain", "la nina", "weather", "western", "southern", "logistics", "road"},
			Severity:      model.SeveritySevere,
			Source:        "Zambia Meteorological Department - Seasonal Forecast 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "LOGISTICS-002",
			Category:      model.CategoryLogistics,
			Statement:     "Rural feeder roads in Western and Northern provinces are unpaved. During rainy season (Nov-Apr), 40-60% of rural roads become impassable. Cold chain logistics impossible without 4x4 vehicles.",
			Keywords:      []string{"road", "rural", "feeder", "unpaved", "rainy", "season", "4x4", "western", "northern"},
			Severity:      model.SeveritySevere,
			Source:        "Road Development Agency - Network Status Report 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "LOGISTICS-003",
			Category:      model.CategoryLogistics,
			Statement:     "Lusaka-Ndola dual carriageway (T3): 58% complete as of January 2025. Completion expected Q4 2026. Significant delays and diversions on this corridor affecting transit times by 2-4 hours.",
			Keywords:      []string{"lusaka", "ndola", "t3", "dual carriageway", "road", "construction", "copperbelt"},
			Severity:      model.SeverityModerate,
			Source:        "Road Development Agency - Major Projects Update 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "LOGISTICS-004",
			Category:      model.CategoryLogistics,
			Statement:     "Cold chain infrastructure: only 3 certified cold storage facilities between Lusaka and Copperbelt. No cold storage in Western, North-Western, or Muchinga provinces. Post-harvest losses for fresh produce average 30-40%.",
			Keywords:      []string{"cold", "chain", "storage", "fresh", "produce", "perishable", "post-harvest", "loss"},
			Severity:      model.SeveritySevere,
			Source:        "Zambia Development Agency - Agri-Logistics Assessment 2025",
			EffectiveDate: "2025-01-01",
		},

		// MINING
		{
			ID:            "MINING-001",
			Category:      model.CategoryMining,
			Statement:     "Mineral royalty rates (2025): Copper/Cobalt open pit 10%, underground 5.5%. Gold 6%. Gemstones 6%. Royalties are calculated on gross value with no deductions for costs.",
			Keywords:      []string{"mining", "royalty", "copper", "cobalt", "gold", "mineral", "tax"},
			Severity:      model.SeverityModerate,
			Source:        "Mines and Minerals Development Act - 2025 SI",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "MINING-002",
			Category:      model.CategoryMining,
			Statement:     "Export duty on raw copper concentrate: 15% of gross value. This incentivizes local smelting and refining. Export of unprocessed minerals requires MMMD approval.",
			Keywords:      []string{"export", "duty", "copper", "concentrate", "smelting", "mining", "processing", "duty-free"},
			Severity:      model.SeveritySevere,
			Source:        "Customs and Excise (Mining) Regulations 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "MINING-003",
			Category:      model.CategoryMining,
			Statement:     "Mining license timeline: large-scale mining license application takes 6-12 months. Requires Environmental Impact Assessment from ZEMA, community consultation, and a resettlement action plan if applicable.",
			Keywords:      []string{"mining", "license", "eia", "zema", "permit", "application", "timeline"},
			Severity:      model.SeverityModerate,
			Source:        "MMMD - Mining Licensing Guidelines 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "MINING-004",
			Category:      model.CategoryMining,
			Statement:     "Mining CIT rate: 30% standard. Mining companies face an additional variable profit tax of 15% on taxable income exceeding 8% of gross sales. Effective tax burden can reach 45%+.",
			Keywords:      []string{"mining", "tax", "corporate", "profit", "variable", "cit"},
			Severity:      model.SeverityModerate,
			Source:        "Income Tax Act - Mining Provisions 2025",
			EffectiveDate: "2025-01-01",
		},

		// AGRICULTURE
		{
			ID:            "AGRICULTURE-001",
			Category:      model.CategoryAgriculture,
			Statement:     "Food Reserve Agency (FRA) maize floor price: ZMW 280 per 50kg bag (2025 marketing season). FRA purchases are limited to designated areas and subject to budget availability.",
			Keywords:      []string{"maize", "fra", "food reserve", "price", "agriculture", "crop", "floor"},
			Severity:      model.SeverityInformational,
			Source:        "FRA - 2025 Crop Marketing Gazette Notice",
			EffectiveDate: "2025-04-01",
		},
		{
			ID:            "AGRICULTURE-002",
			Category:      model.CategoryAgriculture,
			Statement:     "Farmer Input Support Programme (FISP): government subsidizes seed and fertilizer for smallholders farming 0.5-5 hectares. Beneficiary must contribute ZMW 400. Program covers ~1 million farmers.",
			Keywords:      []string{"fisp", "subsidy", "fertilizer", "seed", "agriculture", "smallholder", "input"},
			Severity:      model.SeverityInformational,
			Source:        "Ministry of Agriculture - FISP Guidelines 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "AGRICULTURE-003",
			Category:      model.CategoryAgriculture,
			Statement:     "Maize export ban risk: government has historically imposed export bans during deficit years (2024 drought-impacted season). Any agri-business relying on export markets must factor 20-30% probability of periodic export restrictions.",
			Keywords:      []string{"maize", "export", "ban", "restriction", "agriculture", "grain", "drought"},
			Severity:      model.SeveritySevere,
			Source:        "Ministry of Agriculture - Strategic Grain Reserve Policy",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "AGRICULTURE-004",
			Category:      model.CategoryAgriculture,
			Statement:     "Agricultural land lease rates: government land in farming blocks ranges ZMW 50-200/hectare/year. Private farmland in commercial areas (Mkushi, Chisamba) can reach ZMW 2,000-5,000/hectare/year.",
			Keywords:      []string{"land", "lease", "agriculture", "farm", "hectare", "mkushi", "chisamba"},
			Severity:      model.SeverityInformational,
			Source:        "Ministry of Lands - Agricultural Land Allocation 2025",
			EffectiveDate: "2025-01-01",
		},

		// LABOR
		{
			ID:            "LABOR-001",
			Category:      model.CategoryLabor,
			Statement:     "Minimum wage (2025): ZMW 2,500/month for general workers, ZMW 3,000/month for shop workers in Lusaka/Copperbelt, ZMW 2,100/month for domestic workers. Applies to all formal sector employers.",
			Keywords:      []string{"minimum", "wage", "salary", "labour", "labor", "worker", "pay"},
			Severity:      model.SeverityModerate,
			Source:        "Ministry of Labour - Minimum Wages Order 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "LABOR-002",
			Category:      model.CategoryLabor,
			Statement:     "NAPSA employer contribution: 5% of gross salary (mandatory). Employee contribution: 5%. Applies to all employees earning above ZMW 1,000/month. Non-compliance attracts 5% penalty per month.",
			Keywords:      []string{"napsa", "pension", "contribution", "employer", "social security", "payroll"},
			Severity:      model.SeverityModerate,
			Source:        "NAPSA Act - Contribution Schedule 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "LABOR-003",
			Category:      model.CategoryLabor,
			Statement:     "Skills Development Levy: 0.5% of total payroll, payable monthly to TEVETA. Applies to employers with 5+ employees. Funds are used for vocational training programs.",
			Keywords:      []string{"skills", "levy", "teveta", "payroll", "training", "development"},
			Severity:      model.SeverityInformational,
			Source:        "TEVETA Act - Skills Development Levy Regulations",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "LABOR-004",
			Category:      model.CategoryLabor,
			Statement:     "Workers' Compensation Fund: employer-funded, sector-dependent rates (0.5-5% of payroll). Mining and construction attract the highest rates. Claims processing takes 3-6 months.",
			Keywords:      []string{"workers", "compensation", "insurance", "injury", "safety", "payroll"},
			Severity:      model.SeverityInformational,
			Source:        "Workers' Compensation Act - 2025 Gazette",
			EffectiveDate: "2025-01-01",
		},

		// TRADE
		{
			ID:            "TRADE-001",
			Category:      model.CategoryTrade,
			Statement:     "COMESA preferential tariffs: zero or reduced duty on goods originating from COMESA member states with a valid Certificate of Origin. Rules of origin require 35% local value addition.",
			Keywords:      []string{"comesa", "tariff", "import", "export", "preferential", "trade", "duty"},
			Severity:      model.SeverityInformational,
			Source:        "COMESA Trade Protocol - Zambia Implementation 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "TRADE-002",
			Category:      model.CategoryTrade,
			Statement:     "Standard customs duty rates: 0% (raw materials/capital goods), 5% (semi-processed goods), 15% (intermediate goods), 25% (finished consumer goods). Applies to non-preferential imports.",
			Keywords:      []string{"customs", "duty", "import", "tariff", "rate", "goods"},
			Severity:      model.SeverityModerate,
			Source:        "Customs and Excise Act - Tariff Schedule 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "TRADE-003",
			Category:      model.CategoryTrade,
			Statement:     "VAT on imports: 16% of CIF value plus customs duty, payable at point of entry. VAT-registered importers can claim input credit. Non-registered importers bear the full cost.",
			Keywords:      []string{"vat", "import", "customs", "cif", "tax"},
			Severity:      model.SeverityModerate,
			Source:        "VAT Act - Import Provisions 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "TRADE-004",
			Category:      model.CategoryTrade,
			Statement:     "Import Declaration Fee (IDF): 5% of CIF value on all imports. Non-refundable and separate from customs duty. Significantly increases landed cost of imported goods.",
			Keywords:      []string{"idf", "import", "declaration", "fee", "cif", "customs", "cost"},
			Severity:      model.SeverityModerate,
			Source:        "Customs and Excise - IDF Regulations 2025",
			EffectiveDate: "2025-01-01",
		},

		// DIGITAL
		{
			ID:            "DIGITAL-001",
			Category:      model.CategoryDigital,
			Statement:     "ZICTA licensing: all electronic communication services require a ZICTA license. Application fee ZMW 50,000+. Annual renewal. VAS providers need a separate content service license.",
			Keywords:      []string{"zicta", "license", "telecom", "digital", "communication", "vas"},
			Severity:      model.SeveritySevere,
			Source:        "ZICTA - Licensing Framework 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "DIGITAL-002",
			Category:      model.CategoryDigital,
			Statement:     "Data Protection Act 2021: requires registration with the Data Protection Commissioner for any entity processing personal data. Cross-border data transfer requires an adequacy assessment. Penalties up to ZMW 1,000,000.",
			Keywords:      []string{"data", "protection", "privacy", "gdpr", "personal", "digital", "compliance"},
			Severity:      model.SeverityModerate,
			Source:        "Data Protection Act No. 3 of 2021",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "DIGITAL-003",
			Category:      model.CategoryDigital,
			Statement:     "Mobile money regulatory caps: individual daily transaction limit ZMW 30,000, monthly limit ZMW 150,000. Agent float requirements and KYC tiering apply. Mobile money operators must partner with licensed banks.",
			Keywords:      []string{"mobile", "money", "payment", "digital", "fintech", "transaction", "limit"},
			Severity:      model.SeverityModerate,
			Source:        "Bank of Zambia - National Payment Systems Directives 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "DIGITAL-004",
			Category:      model.CategoryDigital,
			Statement:     "Internet penetration: ~35% of population (2025). Mobile broadband coverage ~70% in urban areas, <20% in rural areas. Average mobile data cost: ~ZMW 5/GB. Fixed broadband limited to major cities.",
			Keywords:      []string{"internet", "broadband", "mobile", "data", "connectivity", "rural", "urban"},
			Severity:      model.SeverityInformational,
			Source:        "ZICTA - ICT Indicators Report Q4 2024",
			EffectiveDate: "2025-01-01",
		},

		// REGISTRATION
		{
			ID:            "REGISTRATION-001",
			Category:      model.CategoryRegistration,
			Statement:     "PACRA company registration: private company ZMW 250 (online), takes 1-3 business days. Requires minimum 1 director, 1 shareholder. Annual return filing fee ZMW 150, due within 90 days of financial year end.",
			Keywords:      []string{"pacra", "registration", "company", "business", "incorporate", "annual return"},
			Severity:      model.SeverityInformational,
			Source:        "PACRA - Companies Act Registration Guide 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "REGISTRATION-002",
			Category:      model.CategoryRegistration,
			Statement:     "ZEMA Environmental Impact Assessment: required for mining, manufacturing, large-scale agriculture, and construction projects. Full EIA costs ZMW 50,000-500,000 and takes 3-6 months.",
			Keywords:      []string{"zema", "eia", "environment", "impact", "assessment", "license", "permit"},
			Severity:      model.SeveritySevere,
			Source:        "ZEMA - EIA Regulations 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "REGISTRATION-003",
			Category:      model.CategoryRegistration,
			Statement:     "Health-related businesses (food processing, restaurants, pharmacies) require Health Registration Authority certification. Inspection and certification takes 4-8 weeks. Annual renewal required.",
			Keywords:      []string{"health", "hra", "food", "safety", "certification", "restaurant", "pharmacy"},
			Severity:      model.SeverityModerate,
			Source:        "HRA - Business Certification Guidelines 2025",
			EffectiveDate: "2025-01-01",
		},
		{
			ID:            "REGISTRATION-004",
			Category:      model.CategoryRegistration,
			Statement:     "Tourism and hospitality businesses require a ZNTB license. Annual license fee ZMW 5,000-25,000 depending on establishment size. Grading inspection mandatory.",
			Keywords:      []string{"tourism", "hotel", "hospitality", "zntb", "license", "lodge", "travel"},
			Severity:      model.SeverityModerate,
			Source:        "Tourism and Hospitality Act - Licensing Regulations 2025",
			EffectiveDate: "2025-01-01",
		},
	}
}
