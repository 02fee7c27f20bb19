package model

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidTier is returned when a tier is outside the fixed VIP set.
var ErrInvalidTier = errors.New("invalid tier")

// Tier is a VIP membership level. It is stored exactly as the operator typed it.
type Tier string

// Tiers lists the canonical (lower-case) VIP levels.
var Tiers = []Tier{"rex", "obsidian", "ems", "otro"}

// ParseTier validates raw against Tiers ignoring case and returns it unchanged.
func ParseTier(raw string) (Tier, error) {
	lower := strings.ToLower(raw)
	for _, t := range Tiers {
		if string(t) == lower {
			return Tier(raw), nil
		}
	}
	return "", ErrInvalidTier
}

// Flag identifies one of the two consumable discounts.
type Flag int

const (
	Mechanical Flag = iota + 1
	Aesthetic
)

// Column returns the fixed column backing the flag.
func (f Flag) Column() string {
	switch f {
	case Mechanical:
		return "descuento_mecanico"
	case Aesthetic:
		return "descuento_estetico"
	}
	return ""
}

func (f Flag) String() string {
	switch f {
	case Mechanical:
		return "mechanical"
	case Aesthetic:
		return "aesthetic"
	}
	return "unknown"
}

// Member is one row of the VIP registry
type Member struct {
	ID                 int64     `gorm:"column:id;primaryKey;autoIncrement:false"`
	Tier               Tier      `gorm:"column:tipo_vip;type:text;not null"`
	MechanicalDiscount bool      `gorm:"column:descuento_mecanico;not null;default:true"`
	AestheticDiscount  bool      `gorm:"column:descuento_estetico;not null;default:true"`
	JoinedAt           time.Time `gorm:"column:fecha_ingreso;not null"`
	ModifiedAt         time.Time `gorm:"column:fecha_modificacion;not null"`
}

// TableName keeps the table name used by existing database files.
func (Member) TableName() string { return "vip_users" }

// Discount reports the value of a single flag.
func (m Member) Discount(f Flag) bool {
	if f == Aesthetic {
		return m.AestheticDiscount
	}
	return m.MechanicalDiscount
}
