package client

import "log"

type AppMode string

const (
	ModeShopping   AppMode = "shopping"
	ModeEnterprise AppMode = "enterprise"
)

// ModeSelector remembers whether the user picked shopping or enterprise
// mode. Unknown persisted values are discarded.
type ModeSelector struct {
	storage Storage
	mode    AppMode
}

func NewModeSelector(storage Storage) *ModeSelector {
	selector := &ModeSelector{storage: storage}
	raw, ok, err := storage.Load(storageKeyMode)
	if err != nil {
		log.Println("Failed to load mode:", err)
		return selector
	}
	if ok {
		if mode := AppMode(raw); mode == ModeShopping || mode == ModeEnterprise {
			selector.mode = mode
		}
	}
	return selector
}

func (s *ModeSelector) Set(mode AppMode) {
	if mode != ModeShopping && mode != ModeEnterprise {
		return
	}
	s.mode = mode
	if err := s.storage.Save(storageKeyMode, []byte(mode)); err != nil {
		log.Println("Failed to save mode:", err)
	}
}

func (s *ModeSelector) Clear() {
	s.mode = ""
	if err := s.storage.Remove(storageKeyMode); err != nil {
		log.Println("Failed to clear mode:", err)
	}
}

func (s *ModeSelector) Current() AppMode {
	return s.mode
}

func (s *ModeSelector) HasSelected() bool {
	return s.mode != ""
}
