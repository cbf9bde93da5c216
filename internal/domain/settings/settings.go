package settings

import (
	"strings"

	"hurghada-dream/go_backend/internal/domain/money"
)

// Settings is the agency metadata stored in the settings slot.
type Settings struct {
	AgencyName string         `json:"agencyName"`
	Phone      string         `json:"phone"`
	Address    string         `json:"address"`
	Currency   money.Currency `json:"currency"`
	Theme      string         `json:"theme"`
	RemoteURL  string         `json:"supabaseUrl"`
	RemoteKey  string         `json:"supabaseAnonKey"`
}

// Agency is the identity block printed at the top of a quote.
type Agency struct {
	Name    string
	Phone   string
	Address string
}

func Defaults() Settings {
	return Settings{
		AgencyName: "Hurghada Dream",
		Phone:      "+20 …",
		Address:    "Hurghada, Red Sea, Égypte",
		Currency:   money.EGP,
		Theme:      "ocean",
	}
}

func (s Settings) Agency() Agency {
	return Agency{Name: s.AgencyName, Phone: s.Phone, Address: s.Address}
}

// DefaultCurrency falls back to EGP when the stored value is not supported.
func (s Settings) DefaultCurrency() money.Currency {
	if s.Currency.IsValid() {
		return s.Currency
	}
	return money.EGP
}

// RemoteEnabled reports whether both the endpoint and the credential are set.
// Either one alone disables sync.
func (s Settings) RemoteEnabled() bool {
	return strings.TrimSpace(s.RemoteURL) != "" && strings.TrimSpace(s.RemoteKey) != ""
}

// Masked returns a copy safe to send to a browser.
func (s Settings) Masked() Settings {
	if s.RemoteKey != "" {
		s.RemoteKey = mask(s.RemoteKey)
	}
	return s
}

// Merge overlays the non-empty fields of patch on s.
func (s Settings) Merge(patch Settings) Settings {
	if patch.AgencyName != "" {
		s.AgencyName = patch.AgencyName
	}
	if patch.Phone != "" {
		s.Phone = patch.Phone
	}
	if patch.Address != "" {
		s.Address = patch.Address
	}
	if patch.Currency != "" {
		s.Currency = patch.Currency
	}
	if patch.Theme != "" {
		s.Theme = patch.Theme
	}
	if patch.RemoteURL != "" {
		s.RemoteURL = patch.RemoteURL
	}
	if patch.RemoteKey != "" && !strings.Contains(patch.RemoteKey, "…") {
		s.RemoteKey = patch.RemoteKey
	}
	return s
}

// Replace returns next as the new settings. Empty fields stay empty, which is
// how the remote endpoint or key gets cleared. A key that still carries the
// mask is the masked value echoed back, so the current key is kept.
func (s Settings) Replace(next Settings) Settings {
	if strings.Contains(next.RemoteKey, "…") {
		next.RemoteKey = s.RemoteKey
	}
	next.RemoteURL = strings.TrimSpace(next.RemoteURL)
	next.RemoteKey = strings.TrimSpace(next.RemoteKey)
	return next
}

func mask(v string) string {
	r := []rune(v)
	if len(r) <= 8 {
		return "…"
	}
	return string(r[:4]) + "…" + string(r[len(r)-4:])
}
