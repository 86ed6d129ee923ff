package entity

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Claves de configuración de plataforma conocidas.
const (
	SettingCommissionRate  = "commission_rate" // porcentaje, ej. "5"
	SettingMaintenanceMode = "maintenance_mode"
	SettingSMTPHost        = "smtp_host"
	SettingSMTPPort        = "smtp_port"
	SettingSMTPUser        = "smtp_user"
	SettingSMTPFrom        = "smtp_from"
)

// Setting par clave/valor global de la plataforma. Los valores se guardan como
// string plano (booleanos y números serializados) y cada consumidor los parsea.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Settings mapa plano clave -> valor con parseos ad hoc.
type Settings map[string]string

// Bool interpreta el valor como booleano; ausente o malformado = false.
func (s Settings) Bool(key string) bool {
	v, err := strconv.ParseBool(s[key])
	return err == nil && v
}

// Decimal interpreta el valor como decimal; ausente o malformado = def.
func (s Settings) Decimal(key string, def decimal.Decimal) decimal.Decimal {
	d, err := decimal.NewFromString(s[key])
	if err != nil {
		return def
	}
	return d
}
