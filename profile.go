package belanja

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/prasetyo/belanja/i18n"
	"github.com/prasetyo/belanja/kvstore"
)

// Store keys, one per profile field.
const (
	keyUserName    = "userName"
	keyProfilePic  = "profilePic"
	keyJobTitle    = "jobTitle"
	keyInstitution = "institutionName"
	keyIDNumber    = "idNumber"
	keyAddress     = "address"
)

// Profile is the user's display identity, shown in the list header and
// on exported reports. All text fields are free-form; the photo is an
// optional self-contained data URI.
type Profile struct {
	Name            string
	JobTitle        string
	InstitutionName string
	IDNumber        string
	Address         string

	photo    string
	hasPhoto bool
}

// Photo returns the embedded photo data and whether a photo is set at
// all. "No photo" is distinct from a photo with empty data.
func (p Profile) Photo() (string, bool) { return p.photo, p.hasPhoto }

// SetPhoto installs an already-encoded photo data URI.
func (p *Profile) SetPhoto(dataURI string) {
	p.photo = dataURI
	p.hasPhoto = true
}

// RemovePhoto clears the photo entirely.
func (p *Profile) RemovePhoto() {
	p.photo = ""
	p.hasPhoto = false
}

// AttachPhoto reads an image file and embeds it as a data URI. The
// bytes are stored opaquely; they are only sniffed for an image media
// type, never decoded.
func (p *Profile) AttachPhoto(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read photo %q: %w", path, err)
	}
	mediaType := http.DetectContentType(raw)
	if !strings.HasPrefix(mediaType, "image/") {
		return fmt.Errorf("%q is not an image (detected %s)", path, mediaType)
	}
	p.SetPhoto("data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(raw))
	return nil
}

// DefaultProfile returns the built-in profile for the given language.
func DefaultProfile(lang i18n.Lang) Profile {
	return Profile{
		Name:            i18n.T(i18n.UserDefault, lang),
		JobTitle:        i18n.T(i18n.JobTitleDefault, lang),
		InstitutionName: i18n.T(i18n.InstitutionDefault, lang),
	}
}

// LoadProfile reads the profile from kv, falling back field by field to
// the built-in defaults. Read failures degrade to the default and are
// logged.
func LoadProfile(kv kvstore.Store, lang i18n.Lang) Profile {
	p := DefaultProfile(lang)
	p.Name = getOr(kv, keyUserName, p.Name)
	p.JobTitle = getOr(kv, keyJobTitle, p.JobTitle)
	p.InstitutionName = getOr(kv, keyInstitution, p.InstitutionName)
	p.IDNumber = getOr(kv, keyIDNumber, p.IDNumber)
	p.Address = getOr(kv, keyAddress, p.Address)
	if pic, ok, err := kv.Get(keyProfilePic); err != nil {
		slog.Warn("could not read profile photo", "err", err)
	} else if ok {
		p.SetPhoto(pic)
	}
	return p
}

// SaveProfile replaces the whole persisted profile with p: every text
// field is written, and the photo key is removed when no photo is set.
func SaveProfile(kv kvstore.Store, p Profile) error {
	fields := map[string]string{
		keyUserName:    p.Name,
		keyJobTitle:    p.JobTitle,
		keyInstitution: p.InstitutionName,
		keyIDNumber:    p.IDNumber,
		keyAddress:     p.Address,
	}
	for key, value := range fields {
		if err := kv.Set(key, value); err != nil {
			return fmt.Errorf("could not save profile: %w", err)
		}
	}
	if p.hasPhoto {
		if err := kv.Set(keyProfilePic, p.photo); err != nil {
			return fmt.Errorf("could not save profile photo: %w", err)
		}
		return nil
	}
	if err := kv.Remove(keyProfilePic); err != nil {
		return fmt.Errorf("could not remove profile photo: %w", err)
	}
	return nil
}

func getOr(kv kvstore.Store, key, fallback string) string {
	v, ok, err := kv.Get(key)
	if err != nil {
		slog.Warn("could not read profile field", "key", key, "err", err)
		return fallback
	}
	if !ok {
		return fallback
	}
	return v
}
