package models

import (
	"time"

	"github.com/urbandepot/parking-service/internal/domain"
)

// Источник действующего тарифа
const (
	SourcePlace   = "place"
	SourceGlobal  = "global"
	SourceDefault = "default"
)

// UpsertTariffRequest запрос на создание или обновление тарифа
// PlaceID = nil задает глобальный тариф
type UpsertTariffRequest struct {
	Actor              domain.Actor `json:"-"`
	PlaceID            *string      `json:"placeId,omitempty"`
	VehicleType        string       `json:"vehicleType"`
	BaseAmount         float64      `json:"baseAmount"`
	PlatformFeePercent float64      `json:"platformFeePercent"`
}

// TariffResponse действующий тариф с расчетом стоимости
type TariffResponse struct {
	ID                 *int64     `json:"id,omitempty"`
	PlaceID            *string    `json:"placeId,omitempty"`
	VehicleType        string     `json:"vehicleType"`
	BaseAmount         float64    `json:"baseAmount"`
	PlatformFeePercent float64    `json:"platformFeePercent"`
	PlatformFee        float64    `json:"platformFee"`
	TotalAmount        float64    `json:"totalAmount"`
	Source             string     `json:"source"` // place, global, default
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainTariff конвертирует domain модель в DTO
func FromDomainTariff(t *domain.Tariff) *TariffResponse {
	if t == nil {
		return nil
	}

	fee, total := t.Quote()
	resp := &TariffResponse{
		PlaceID:            t.PlaceID,
		VehicleType:        string(t.VehicleType),
		BaseAmount:         t.BaseAmount,
		PlatformFeePercent: t.PlatformFeePercent,
		PlatformFee:        fee,
		TotalAmount:        total,
	}

	switch {
	case t.IsDefault():
		resp.Source = SourceDefault
	case t.IsGlobal():
		resp.Source = SourceGlobal
	default:
		resp.Source = SourcePlace
	}

	if !t.IsDefault() {
		id := t.ID
		updatedAt := t.UpdatedAt
		resp.ID = &id
		resp.UpdatedAt = &updatedAt
	}

	return resp
}
