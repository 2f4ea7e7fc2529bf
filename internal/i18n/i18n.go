// Package i18n holds the UI language preference and a small translation
// table. The full marketing copy catalog lives with the frontend; the CLI
// only needs labels for its own prompts.
package i18n

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/drishya/internal/common"
	"github.com/dmitrijs2005/drishya/internal/kvstore"
	"github.com/dmitrijs2005/drishya/internal/logging"
)

const DefaultLanguage = "en"

// Language describes one selectable UI language.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
}

var supportedLanguages = []Language{
	{Code: "en", Name: "English", NativeName: "English"},
	{Code: "es", Name: "Spanish", NativeName: "Español"},
	{Code: "fr", Name: "French", NativeName: "Français"},
	{Code: "de", Name: "German", NativeName: "Deutsch"},
	{Code: "it", Name: "Italian", NativeName: "Italiano"},
	{Code: "pt", Name: "Portuguese", NativeName: "Português"},
	{Code: "ru", Name: "Russian", NativeName: "Русский"},
	{Code: "zh", Name: "Chinese", NativeName: "中文"},
	{Code: "ja", Name: "Japanese", NativeName: "日本語"},
	{Code: "ko", Name: "Korean", NativeName: "한국어"},
	{Code: "ar", Name: "Arabic", NativeName: "العربية"},
	{Code: "hi", Name: "Hindi", NativeName: "हिन्दी"},
}

// translations is keyed language code -> dotted key -> text. Languages other
// than English may cover only part of the keys; T falls back to English.
var translations = map[string]map[string]string{
	"en": {
		"nav.home":              "Home",
		"nav.create_video":      "Create Video",
		"nav.my_orders":         "My Orders",
		"nav.get_started":       "Get Started",
		"wizard.next":           "Next",
		"wizard.back":           "Back",
		"wizard.submit":         "Submit Order",
		"wizard.draft_saved":    "Draft saved",
		"pricing.create_video":  "Create Video",
		"pricing.contact_sales": "Contact Sales",
		"auth.sign_in":          "Sign In",
		"auth.sign_up":          "Sign Up",
		"auth.sign_out":         "Sign Out",
		"order.confirmed":       "Order Confirmed",
		"order.delivery_by":     "Estimated delivery",
	},
	"es": {
		"nav.home":             "Inicio",
		"nav.create_video":     "Crear Video",
		"nav.my_orders":        "Mis Pedidos",
		"nav.get_started":      "Comenzar",
		"wizard.next":          "Siguiente",
		"wizard.back":          "Atrás",
		"wizard.submit":        "Enviar Pedido",
		"pricing.create_video": "Crear Video",
	},
	"fr": {
		"nav.home":         "Accueil",
		"nav.create_video": "Créer une Vidéo",
		"nav.my_orders":    "Mes Commandes",
		"nav.get_started":  "Commencer",
		"wizard.next":      "Suivant",
		"wizard.back":      "Retour",
	},
	"de": {
		"nav.home":         "Startseite",
		"nav.create_video": "Video Erstellen",
		"nav.my_orders":    "Meine Bestellungen",
		"nav.get_started":  "Loslegen",
		"wizard.next":      "Weiter",
		"wizard.back":      "Zurück",
	},
}

// Service resolves translation keys for the current language and persists the
// preference across sessions.
type Service struct {
	store  kvstore.Store
	logger logging.Logger

	mu      sync.RWMutex
	current string
}

func NewService(store kvstore.Store, logger logging.Logger) *Service {
	return &Service{
		store:   store,
		logger:  logger.With("module", "i18n"),
		current: DefaultLanguage,
	}
}

// Load restores the persisted preference. Unknown or missing values leave the
// default in place.
func (s *Service) Load(ctx context.Context) error {
	raw, err := s.store.Get(ctx, kvstore.KeyLanguage)
	if err != nil {
		return fmt.Errorf("load language: %w", err)
	}
	code := string(raw)
	if !IsSupported(code) {
		return nil
	}
	s.mu.Lock()
	s.current = code
	s.mu.Unlock()
	s.logger.Debug(ctx, "language restored", "code", code)
	return nil
}

func (s *Service) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// CurrentInfo returns the full descriptor of the current language.
func (s *Service) CurrentInfo() Language {
	code := s.Current()
	for _, l := range supportedLanguages {
		if l.Code == code {
			return l
		}
	}
	return supportedLanguages[0]
}

// SetLanguage switches and persists the preference. Unsupported codes are
// rejected.
func (s *Service) SetLanguage(ctx context.Context, code string) error {
	if !IsSupported(code) {
		return fmt.Errorf("language %q: %w", code, common.ErrNotFound)
	}
	if err := s.store.Set(ctx, kvstore.KeyLanguage, []byte(code)); err != nil {
		return fmt.Errorf("persist language: %w", err)
	}
	s.mu.Lock()
	s.current = code
	s.mu.Unlock()
	s.logger.Info(ctx, "language changed", "code", code)
	return nil
}

// T resolves a dotted translation key. Missing entries fall back to English;
// a key unknown even there is returned as-is.
func (s *Service) T(key string) string {
	if v, ok := translations[s.Current()][key]; ok {
		return v
	}
	if v, ok := translations[DefaultLanguage][key]; ok {
		return v
	}
	return key
}

// Supported returns the selectable languages in display order.
func Supported() []Language {
	out := make([]Language, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

func IsSupported(code string) bool {
	for _, l := range supportedLanguages {
		if l.Code == code {
			return true
		}
	}
	return false
}
