package domain

import (
	"errors"
)

var (
	MessageSuccessGetAccessCode = "daily access code retrieved successfully"
	MessageSuccessUnlock        = "access granted, you can now view the medicine database"
	MessageSuccessGetCatalog    = "medicine database retrieved successfully"
	MessageSuccessStockLookup   = "stock lookup completed"

	MessageFailedUnlock      = "invalid code, please enter the correct 8-digit code"
	MessageFailedGetCatalog  = "failed to retrieve medicine database"
	MessageCatalogLocked     = "enter the 8-digit daily access code to view the medicine database"
	MessageFailedStockLookup = "failed to look up stock"

	ErrInvalidAccessCode = errors.New("invalid access code")
	ErrCatalogLocked     = errors.New("medicine database is locked")
)

type (
	UnlockCatalogRequest struct {
		Code string `json:"code" validate:"required,len=8,numeric"`
	}

	AccessCodeResponse struct {
		Date string `json:"date"`
		Code string `json:"code"`
	}

	ApprovedMedicineResponse struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		GenericName  string `json:"generic_name"`
		Manufacturer string `json:"manufacturer"`
		Composition  string `json:"composition"`
		Dosage       string `json:"dosage"`
		ApprovalDate string `json:"approval_date"`
		RegulatoryID string `json:"regulatory_id"`
		Stock        int    `json:"stock"`
		InStock      bool   `json:"in_stock"`
	}

	StockLookupResponse struct {
		Found    bool                      `json:"found"`
		InStock  bool                      `json:"in_stock"`
		Medicine *ApprovedMedicineResponse `json:"medicine,omitempty"`
	}
)
