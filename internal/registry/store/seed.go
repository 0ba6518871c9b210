package store

import (
	"context"
	"fmt"

	"murima/internal/registry/models"
)

// Creator is the narrow write surface the seeder needs.
type Creator interface {
	Create(ctx context.Context, b *models.Business) error
}

// SeedDemo loads a small deterministic dataset so local development and the
// dashboard have something to show. Safe to call only on an empty store.
func SeedDemo(ctx context.Context, s Creator) error {
	records := []models.Business{
		{
			Name: "Kaze Agro Supplies", TIN: "102345678", Status: models.StatusActive,
			Phone: "+250788100001", OwnerName: "Claudine Uwase", NationalID: "1199080012345678",
			Ownership: models.OwnershipYouth, Gender: "Female", Age: 27,
			EducationLevel: "Secondary school", DisabilityStatus: "None", Nationality: "Rwandan",
			Province: "Eastern", District: "Kayonza", Sector: "Mukarange",
			BusinessType: "Agro-processing", BusinessSize: "Micro enterprise",
			RevenueBracket: "Below 500K", AnnualIncome: "420,000 RWF",
			EmployeeCount: 3, FemaleEmployees: 2, YouthEmployees: 2, PermanentEmployment: false,
			SupportReceived: "business training, access to credit",
			Production: []models.ProductionItem{
				{ID: 1, Name: "Maize flour", Quantity: 120, Unit: "kg"},
			},
			Commencement: "2024-03-01",
		},
		{
			Name: "Huye Coffee Works", TIN: "103456789", Status: models.StatusActive,
			Phone: "+250788100002", OwnerName: "Jean Bosco Niyonzima", NationalID: "1197570098765432",
			Ownership: models.OwnershipNonYouth, Gender: "Male", Age: 48,
			EducationLevel: "Bachelor degree", DisabilityStatus: "None", Nationality: "Rwandan",
			Province: "Southern", District: "Huye", Sector: "Ngoma",
			BusinessType: "Coffee washing station", BusinessSize: "Medium",
			RevenueBracket: "1M - 5M", AnnualIncome: "3,600,000 RWF",
			EmployeeCount: 14, FemaleEmployees: 8, YouthEmployees: 5, PermanentEmployment: true,
			SupportReceived: "market linkage",
			Production: []models.ProductionItem{
				{ID: 1, Name: "Green coffee", Quantity: 2400, Unit: "kg"},
			},
			Commencement: "2019-07-10",
		},
		{
			Name: "Rubavu Fisheries", TIN: "104567890", Status: models.StatusPending,
			Phone: "+250788100003", OwnerName: "Eric Habimana", NationalID: "1198670011223344",
			Ownership: models.OwnershipNonYouth, Gender: "Male", Age: 39,
			EducationLevel: "Primary", DisabilityStatus: "None", Nationality: "Rwandan",
			Province: "Western", District: "Rubavu", Sector: "Gisenyi",
			BusinessType: "Fishing cooperative", BusinessSize: "Small",
			RevenueBracket: "500K - 1M", AnnualIncome: "900,000 RWF",
			EmployeeCount: 6, FemaleEmployees: 1, YouthEmployees: 3, PermanentEmployment: false,
			SupportReceived: "equipment support",
			Production: []models.ProductionItem{
				{ID: 1, Name: "Tilapia", Quantity: 800, Unit: "kg"},
				{ID: 2, Name: "Sambaza", Quantity: 350, Unit: "kg"},
			},
			Commencement: "2022-11-20",
		},
		{
			Name: "Musanze Honey Collective", TIN: "105678901", Status: models.StatusActive,
			Phone: "+250788100004", OwnerName: "Diane Ingabire", NationalID: "1199580055667788",
			Ownership: models.OwnershipYouth, Gender: "Female", Age: 24,
			EducationLevel: "TVET certificate", DisabilityStatus: "Yes", Nationality: "Rwandan",
			Province: "Northern", District: "Musanze", Sector: "Muhoza",
			BusinessType: "Beekeeping", BusinessSize: "Micro",
			RevenueBracket: "Below 500K", AnnualIncome: "380,000 RWF",
			EmployeeCount: 2, FemaleEmployees: 2, YouthEmployees: 2, PermanentEmployment: false,
			SupportReceived: "training, inputs",
			Production: []models.ProductionItem{
				{ID: 1, Name: "Honey", Quantity: 150, Unit: "L"},
			},
			Commencement: "2023-05-15",
		},
		{
			Name: "Gasabo Tailoring House", TIN: "106789012", Status: models.StatusInactive,
			Phone: "+250788100005", OwnerName: "Solange Mukamana", NationalID: "1198280033445566",
			Ownership: models.OwnershipNonYouth, Gender: "Female", Age: 43,
			EducationLevel: "No formal education", DisabilityStatus: "None", Nationality: "Rwandan",
			Province: "Kigali City", District: "Gasabo", Sector: "Remera",
			BusinessType: "Tailoring workshop", BusinessSize: "Small",
			RevenueBracket: "500K - 1M", AnnualIncome: "760,000 RWF",
			EmployeeCount: 4, FemaleEmployees: 4, PermanentEmployment: true,
			SupportReceived: "",
			Commencement:    "2017-02-01",
		},
	}

	for i := range records {
		if err := s.Create(ctx, &records[i]); err != nil {
			return fmt.Errorf("seed record %q: %w", records[i].Name, err)
		}
	}
	return nil
}
