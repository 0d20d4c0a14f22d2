package models

// ShopSettings is the resolved shop-wide contact data injected into every page.
type ShopSettings struct {
	ShopName string `json:"shop_name"`
	ShopLogo string `json:"shop_logo"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	MapURL   string `json:"map_url"`
}

// SettingsRecord is the stored shop_info/main document. A nil field is absent:
// it falls back to the default on read and is left untouched on merge.
type SettingsRecord struct {
	ShopName *string `json:"shop_name,omitempty"`
	ShopLogo *string `json:"shop_logo,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Address  *string `json:"address,omitempty"`
	MapURL   *string `json:"map_url,omitempty"`
}

// Merge copies every present field of patch into r.
func (r *SettingsRecord) Merge(patch SettingsRecord) {
	if patch.ShopName != nil {
		r.ShopName = patch.ShopName
	}
	if patch.ShopLogo != nil {
		r.ShopLogo = patch.ShopLogo
	}
	if patch.Phone != nil {
		r.Phone = patch.Phone
	}
	if patch.Email != nil {
		r.Email = patch.Email
	}
	if patch.Address != nil {
		r.Address = patch.Address
	}
	if patch.MapURL != nil {
		r.MapURL = patch.MapURL
	}
}

// Over resolves r on top of defaults.
func (r SettingsRecord) Over(defaults ShopSettings) ShopSettings {
	out := defaults
	if r.ShopName != nil {
		out.ShopName = *r.ShopName
	}
	if r.ShopLogo != nil {
		out.ShopLogo = *r.ShopLogo
	}
	if r.Phone != nil {
		out.Phone = *r.Phone
	}
	if r.Email != nil {
		out.Email = *r.Email
	}
	if r.Address != nil {
		out.Address = *r.Address
	}
	if r.MapURL != nil {
		out.MapURL = *r.MapURL
	}
	return out
}

// Empty reports whether no field is present.
func (r SettingsRecord) Empty() bool {
	return r.ShopName == nil && r.ShopLogo == nil && r.Phone == nil &&
		r.Email == nil && r.Address == nil && r.MapURL == nil
}
