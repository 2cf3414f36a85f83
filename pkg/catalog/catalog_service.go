package catalog

import (
	"strings"

	"github.com/lavanyassgit/Medicine-AI/domain"
)

type (
	CatalogService interface {
		GetAccessCode() domain.AccessCodeResponse
		Unlock(userID string, req domain.UnlockCatalogRequest) error
		Lock(userID string)
		GetMedicines(userID string, query string) ([]domain.ApprovedMedicineResponse, error)
		LookupStock(query string) domain.StockLookupResponse
	}

	catalogService struct {
		catalog *Catalog
		gate    *AccessGate
	}
)

func NewCatalogService(catalog *Catalog, gate *AccessGate) CatalogService {
	return &catalogService{catalog: catalog, gate: gate}
}

func (s *catalogService) GetAccessCode() domain.AccessCodeResponse {
	day, code := s.gate.TodayCode()
	return domain.AccessCodeResponse{Date: day, Code: code}
}

func (s *catalogService) Unlock(userID string, req domain.UnlockCatalogRequest) error {
	return s.gate.Unlock(userID, strings.TrimSpace(req.Code))
}

func (s *catalogService) Lock(userID string) {
	s.gate.Lock(userID)
}

func (s *catalogService) GetMedicines(userID string, query string) ([]domain.ApprovedMedicineResponse, error) {
	if !s.gate.IsUnlocked(userID) {
		return nil, domain.ErrCatalogLocked
	}

	matches := s.catalog.Search(strings.TrimSpace(query))
	response := make([]domain.ApprovedMedicineResponse, 0, len(matches))
	for _, m := range matches {
		response = append(response, toMedicineResponse(m))
	}
	return response, nil
}

func (s *catalogService) LookupStock(query string) domain.StockLookupResponse {
	m, ok := s.catalog.Lookup(query)
	if !ok {
		return domain.StockLookupResponse{}
	}
	res := toMedicineResponse(m)
	return domain.StockLookupResponse{Found: true, InStock: m.InStock(), Medicine: &res}
}

func toMedicineResponse(m Medicine) domain.ApprovedMedicineResponse {
	return domain.ApprovedMedicineResponse{
		ID:           m.ID,
		Name:         m.Name,
		GenericName:  m.GenericName,
		Manufacturer: m.Manufacturer,
		Composition:  m.Composition,
		Dosage:       m.Dosage,
		ApprovalDate: m.ApprovalDate,
		RegulatoryID: m.RegulatoryID,
		Stock:        m.Stock,
		InStock:      m.InStock(),
	}
}
