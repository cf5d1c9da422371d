// Package theme holds the process-wide color palette selected by user type.
//
// Exactly one palette is active at a time. Selecting a user type replaces the
// previous palette and pushes the new one to every registered Surface; it
// never layers palettes on top of each other.
package theme

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/medstock/internal/errors"
)

// UserType is the kind of account the storefront is presented to.
type UserType string

const (
	Pharmacy    UserType = "pharmacy"
	Distributor UserType = "distributor"
	Clinic      UserType = "clinic"
)

// Palette holds all color values for one user type.
type Palette struct {
	Name UserType

	// Brand
	Accent    lipgloss.Color
	AccentDim lipgloss.Color

	// Semantic
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// Text
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color

	// Surfaces
	Surface lipgloss.Color
	Border  lipgloss.Color
}

var palettes = map[UserType]Palette{
	Pharmacy: {
		Name:      Pharmacy,
		Accent:    lipgloss.Color("#10B981"),
		AccentDim: lipgloss.Color("#047857"),
		Success:   lipgloss.Color("#22C55E"),
		Warning:   lipgloss.Color("#EAB308"),
		Error:     lipgloss.Color("#EF4444"),
		Primary:   lipgloss.Color("#E5E7EB"),
		Secondary: lipgloss.Color("#9CA3AF"),
		Muted:     lipgloss.Color("#6B7280"),
		Surface:   lipgloss.Color("#111827"),
		Border:    lipgloss.Color("#1F2937"),
	},
	Distributor: {
		Name:      Distributor,
		Accent:    lipgloss.Color("#3B82F6"),
		AccentDim: lipgloss.Color("#1D4ED8"),
		Success:   lipgloss.Color("#22C55E"),
		Warning:   lipgloss.Color("#F59E0B"),
		Error:     lipgloss.Color("#F43F5E"),
		Primary:   lipgloss.Color("#E2E8F0"),
		Secondary: lipgloss.Color("#94A3B8"),
		Muted:     lipgloss.Color("#64748B"),
		Surface:   lipgloss.Color("#0F172A"),
		Border:    lipgloss.Color("#1E293B"),
	},
	Clinic: {
		Name:      Clinic,
		Accent:    lipgloss.Color("#A855F7"),
		AccentDim: lipgloss.Color("#7E22CE"),
		Success:   lipgloss.Color("#4ADE80"),
		Warning:   lipgloss.Color("#FACC15"),
		Error:     lipgloss.Color("#F87171"),
		Primary:   lipgloss.Color("#F4F4F5"),
		Secondary: lipgloss.Color("#A1A1AA"),
		Muted:     lipgloss.Color("#71717A"),
		Surface:   lipgloss.Color("#18181B"),
		Border:    lipgloss.Color("#27272A"),
	},
}

// DefaultUserType is active until something selects another.
const DefaultUserType = Pharmacy

// UserTypes returns the known user types, sorted.
func UserTypes() []UserType {
	types := make([]UserType, 0, len(palettes))
	for t := range palettes {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Label returns the display name, e.g. "Pharmacy".
func (u UserType) Label() string {
	if u == "" {
		return ""
	}
	return strings.ToUpper(string(u[:1])) + string(u[1:])
}

// Lookup returns the palette for a user type.
func Lookup(u UserType) (Palette, error) {
	p, ok := palettes[u]
	if !ok {
		names := make([]string, 0, len(palettes))
		for _, t := range UserTypes() {
			names = append(names, string(t))
		}
		return Palette{}, errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown user type %q", u),
			"Use one of: "+strings.Join(names, ", "))
	}
	return p, nil
}

// Surface is anything that restyles itself when the palette changes.
type Surface interface {
	ApplyPalette(p Palette)
}

// Switcher owns the active palette.
type Switcher struct {
	mu       sync.Mutex
	active   Palette
	surfaces map[int]Surface
	nextID   int
}

// NewSwitcher starts on the default palette.
func NewSwitcher() *Switcher {
	return &Switcher{
		active:   palettes[DefaultUserType],
		surfaces: make(map[int]Surface),
	}
}

// Active returns the current palette.
func (s *Switcher) Active() Palette {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Select makes u's palette the only active one and notifies surfaces.
func (s *Switcher) Select(u UserType) (Palette, error) {
	p, err := Lookup(u)
	if err != nil {
		return s.Active(), err
	}
	s.apply(p)
	return p, nil
}

// Reset restores the default palette.
func (s *Switcher) Reset() {
	s.apply(palettes[DefaultUserType])
}

func (s *Switcher) apply(p Palette) {
	s.mu.Lock()
	s.active = p
	surfaces := make([]Surface, 0, len(s.surfaces))
	for id := 0; id <= s.nextID; id++ {
		if sf, ok := s.surfaces[id]; ok {
			surfaces = append(surfaces, sf)
		}
	}
	s.mu.Unlock()

	for _, sf := range surfaces {
		sf.ApplyPalette(p)
	}
}

// Attach registers a surface, applies the active palette to it right away
// and returns a function that detaches it.
func (s *Switcher) Attach(sf Surface) (detach func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.surfaces[id] = sf
	p := s.active
	s.mu.Unlock()

	sf.ApplyPalette(p)

	return func() {
		s.mu.Lock()
		delete(s.surfaces, id)
		s.mu.Unlock()
	}
}

var global = NewSwitcher()

// Global returns the process-wide switcher.
func Global() *Switcher {
	return global
}
