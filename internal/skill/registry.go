package skill

import (
	"strconv"
	"strings"

	"github.com/spotiskill/spotiskill/internal/spotify/client"
)

// Device is the slice of a Spotify device the skill keeps across turns.
type Device struct {
	ID   string
	Name string
}

// Registry maps 1-based ordinal keys ("1", "2", ...) to devices, in the order
// the provider listed them. The user refers to devices by these ordinals in a
// follow-up utterance. Keys are dense and stable only within one listing; a
// new listing fully replaces the mapping.
type Registry map[string]Device

// NewRegistry builds a registry from a provider device list, assigning
// sequential 1-based keys in list order.
func NewRegistry(devices []client.Device) Registry {
	r := make(Registry, len(devices))
	for i, d := range devices {
		r[strconv.Itoa(i+1)] = Device{ID: d.ID, Name: d.Name}
	}
	return r
}

// RegistryFromAttributes rebuilds a registry from session attributes.
// Entries that don't look like devices are skipped.
func RegistryFromAttributes(attrs map[string]any) Registry {
	r := make(Registry, len(attrs))
	for key, value := range attrs {
		entry, ok := value.(map[string]any)
		if !ok {
			continue
		}
		id, _ := entry["id"].(string)
		name, _ := entry["name"].(string)
		if id == "" && name == "" {
			continue
		}
		r[key] = Device{ID: id, Name: name}
	}
	return r
}

// Attributes encodes the registry as a session attribute mapping.
func (r Registry) Attributes() map[string]any {
	attrs := make(map[string]any, len(r))
	for key, d := range r {
		attrs[key] = map[string]any{
			"id":   d.ID,
			"name": d.Name,
		}
	}
	return attrs
}

// Lookup returns the device at the given ordinal key.
func (r Registry) Lookup(key string) (Device, bool) {
	d, ok := r[key]
	return d, ok
}

// FindByName returns the first device whose name matches, case-insensitively,
// scanning in ordinal order.
func (r Registry) FindByName(name string) (Device, bool) {
	want := strings.ToLower(name)
	for i := 1; i <= len(r); i++ {
		d, ok := r[strconv.Itoa(i)]
		if !ok {
			continue
		}
		if strings.ToLower(d.Name) == want {
			return d, true
		}
	}
	return Device{}, false
}

// Render enumerates the registry as "<key>, <name>. " fragments in ordinal
// order. An empty registry renders as the empty string.
func (r Registry) Render() string {
	var sb strings.Builder
	for i := 1; i <= len(r); i++ {
		key := strconv.Itoa(i)
		d, ok := r[key]
		if !ok {
			continue
		}
		sb.WriteString(key)
		sb.WriteString(", ")
		sb.WriteString(d.Name)
		sb.WriteString(". ")
	}
	return sb.String()
}
