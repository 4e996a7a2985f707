package services

import (
	"context"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/dto"
)

// VoucherSvcFacade is the voucher entry service surface.
type VoucherSvcFacade interface {
	CreateVoucher(ctx context.Context, companyID string, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, []domain.VoucherEntry, error)
	GetVoucherByID(ctx context.Context, companyID, voucherID, userID string) (*domain.Voucher, []domain.VoucherEntry, error)
	ListVouchers(ctx context.Context, companyID string, limit int, nextToken *string, userID string) ([]domain.Voucher, *string, error)
}
