package entity

// SecurityType é o modo de segurança da WLAN.
type SecurityType string

const (
	SecurityOpen           SecurityType = "open"
	SecurityWPA2Personal   SecurityType = "wpa2-personal"
	SecurityWPA3Personal   SecurityType = "wpa3-personal"
	SecurityWPA2Enterprise SecurityType = "wpa2-enterprise"
)

// Band é a banda de rádio em que o serviço é anunciado.
type Band string

const (
	Band24GHz Band = "2.4GHz"
	Band5GHz  Band = "5GHz"
	Band6GHz  Band = "6GHz"
	BandDual  Band = "dual"
	BandAll   Band = "all"
)

// ServiceSpec describes the WLAN service to be created.
type ServiceSpec struct {
	Name       string       `json:"name" yaml:"name" toml:"name" validate:"required,max=64"`
	SSID       string       `json:"ssid" yaml:"ssid" toml:"ssid" validate:"required,max=32"`
	Security   SecurityType `json:"security" yaml:"security" toml:"security" validate:"required,oneof=open wpa2-personal wpa3-personal wpa2-enterprise"`
	Passphrase string       `json:"passphrase,omitempty" yaml:"passphrase" toml:"passphrase" validate:"required_unless=Security open,max=63"`
	VLANID     *int         `json:"vlan_id,omitempty" yaml:"vlan_id" toml:"vlan_id" validate:"omitempty,min=1,max=4094"`
	Band       Band         `json:"band" yaml:"band" toml:"band" validate:"required,oneof=2.4GHz 5GHz 6GHz dual all"`
	Enabled    bool         `json:"enabled" yaml:"enabled" toml:"enabled"`
	Sites      []string     `json:"sites" yaml:"sites" toml:"sites" validate:"min=1,dive,required"`
}

// Service is the WLAN service as created on the controller.
type Service struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	SSID string `json:"ssid"`
}
