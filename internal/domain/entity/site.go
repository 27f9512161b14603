package entity

// Site é a unidade de escopo de implantação escolhida pelo operador.
type Site struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DeviceGroup agrupa perfis de dispositivo de um único site.
type DeviceGroup struct {
	ID            string   `json:"id"`
	Name          string   `json:"name,omitempty"`
	SiteID        string   `json:"site_id"`
	ProfileIDs    []string `json:"profile_ids,omitempty"`
	DeviceCount   int      `json:"device_count,omitempty"`
	SerialNumbers []string `json:"serial_numbers,omitempty"`
}
