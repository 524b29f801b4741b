package dto

import "time"

// SetAlertLevelRequest body para PUT /api/branches/:id/alert-levels.
type SetAlertLevelRequest struct {
	ProductInstanceID int64 `json:"product_instance_id" validate:"min=0"`
	Level             int64 `json:"level" validate:"min=0"`
}

// AlertLevelResponse nivel de alerta configurado.
type AlertLevelResponse struct {
	BranchID          int64     `json:"branch_id"`
	ProductInstanceID int64     `json:"product_instance_id"`
	Level             int64     `json:"level"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// LowStockStatusResponse estado de stock bajo de un producto en una sucursal.
type LowStockStatusResponse struct {
	ProductInstanceID int64 `json:"product_instance_id"`
	IsLow             bool  `json:"is_low"`
	CurrentLevel      int64 `json:"current_level"`
	Threshold         int64 `json:"threshold"`
}

// NotificationResponse notificación en respuestas HTTP.
type NotificationResponse struct {
	ID        string     `json:"id"`
	BranchID  *int64     `json:"branch_id,omitempty"`
	Message   string     `json:"message"`
	Target    string     `json:"target"`
	Type      string     `json:"type"`
	CreatedAt time.Time  `json:"created_at"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
}
