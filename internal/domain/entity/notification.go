package entity

import (
	"fmt"
	"time"
)

// Tipos de notificación.
const (
	NotificationTypeAlert = "alert"
	NotificationTypeInfo  = "info"
)

// TargetBranchManagers es la política destinataria de las alertas de stock bajo.
const TargetBranchManagers = "BranchManagerPolicy"

// Notification es una notificación persistida y luego publicada al grupo de la
// sucursal. BranchID nil significa difusión global. ReadAt lo asigna el flujo
// de marcado como leída.
type Notification struct {
	ID        string
	BranchID  *int64
	Message   string
	Target    string
	Type      string
	CreatedAt time.Time
	ReadAt    *time.Time
}

// BranchGroup devuelve el nombre del grupo de transporte de una sucursal.
func BranchGroup(branchID int64) string {
	return fmt.Sprintf("BranchGroup_%d", branchID)
}
