package catalog

var ApprovedMedicines = []Medicine{
	{
		ID:           "MED-001",
		Name:         "Amoxicillin",
		GenericName:  "Amoxicillin Trihydrate",
		Manufacturer: "PharmaCorp Ltd",
		Composition:  "Amoxicillin Trihydrate eq. to Amoxicillin 500mg",
		Dosage:       "250mg, 500mg Capsules",
		ApprovalDate: "2020-03-15",
		RegulatoryID: "FDA-ANT-2020-0315",
		Stock:        0,
	},
	{
		ID:           "MED-002",
		Name:         "Paracetamol",
		GenericName:  "Acetaminophen",
		Manufacturer: "Multiple Approved",
		Composition:  "Paracetamol IP 500mg/650mg",
		Dosage:       "500mg, 650mg Tablets",
		ApprovalDate: "2018-01-20",
		RegulatoryID: "FDA-ANL-2018-0120",
		Stock:        450,
	},
	{
		ID:           "MED-003",
		Name:         "Metformin",
		GenericName:  "Metformin Hydrochloride",
		Manufacturer: "Multiple Approved",
		Composition:  "Metformin Hydrochloride 500mg/850mg/1000mg",
		Dosage:       "500mg, 850mg, 1000mg Tablets",
		ApprovalDate: "2019-06-10",
		RegulatoryID: "FDA-DIA-2019-0610",
		Stock:        320,
	},
	{
		ID:           "MED-004",
		Name:         "Atorvastatin",
		GenericName:  "Atorvastatin Calcium",
		Manufacturer: "CardioMed Pharmaceuticals",
		Composition:  "Atorvastatin Calcium eq. to Atorvastatin 10mg/20mg/40mg",
		Dosage:       "10mg, 20mg, 40mg Tablets",
		ApprovalDate: "2021-02-28",
		RegulatoryID: "FDA-CAR-2021-0228",
		Stock:        180,
	},
	{
		ID:           "MED-005",
		Name:         "Ciprofloxacin",
		GenericName:  "Ciprofloxacin Hydrochloride",
		Manufacturer: "BioPharm Industries",
		Composition:  "Ciprofloxacin Hydrochloride eq. to Ciprofloxacin 250mg/500mg",
		Dosage:       "250mg, 500mg Tablets",
		ApprovalDate: "2020-09-15",
		RegulatoryID: "FDA-ANT-2020-0915",
		Stock:        275,
	},
	{
		ID:           "MED-006",
		Name:         "Omeprazole",
		GenericName:  "Omeprazole",
		Manufacturer: "GastroHealth Pharma",
		Composition:  "Omeprazole 20mg/40mg",
		Dosage:       "20mg, 40mg Capsules",
		ApprovalDate: "2019-11-22",
		RegulatoryID: "FDA-GAS-2019-1122",
		Stock:        0,
	},
}
