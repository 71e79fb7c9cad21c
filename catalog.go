package hwinfo

import (
	"fmt"
	"strings"
)

// Catalog holds every label, placeholder, and message shown in the inventory table.
type Catalog struct {
	Language string

	PropertyHeader string
	ValueHeader    string

	// Processor
	Architecture   string
	OpModes        string
	ModelName      string
	CoresPerSocket string
	ThreadsPerCore string
	Sockets        string
	MaxMHz         string
	Threads        string
	MaxGHz         string
	ProcessorError string

	// Memory
	MemoryTotal string

	// Storage
	StorageNonSystem string
	StorageNone      string
	StorageFailed    string
	StorageError     string

	// Graphics
	Graphics      string
	GraphicsNone  string
	GraphicsError string

	// Identity
	PCName         string
	Hostname       string
	OSName         string
	OSVersion      string
	OSArchitecture string
	UnknownModel   string
	UnknownVendor  string
}

// French is the default catalog.
var French = Catalog{
	Language:       "fr",
	PropertyHeader: "Propriété",
	ValueHeader:    "Valeur",

	Architecture:   "Architecture",
	OpModes:        "Mode(s) d'opération du CPU",
	ModelName:      "Famille de processeur",
	CoresPerSocket: "Nombre de cœurs physiques",
	ThreadsPerCore: "Threads par cœur",
	Sockets:        "Nombre de sockets",
	MaxMHz:         "Fréquence Turbo maxi (MHz)",
	Threads:        "Nombre de threads",
	MaxGHz:         "Fréquence Turbo maxi (GHz)",
	ProcessorError: "Erreur lors de la récupération des informations processeur",

	MemoryTotal: "Mémoire totale (Go)",

	StorageNonSystem: "Stockage (non système)",
	StorageNone:      "Aucun périphérique de stockage non système détecté",
	StorageFailed:    "Stockage",
	StorageError:     "Erreur lors de la récupération des informations de stockage.",

	Graphics:      "Cartes graphiques",
	GraphicsNone:  "Aucune carte graphique détectée",
	GraphicsError: "Erreur lors de la récupération des informations graphiques.",

	PCName:         "Nom du PC",
	Hostname:       "Nom de la machine (hostname)",
	OSName:         "Système d'exploitation",
	OSVersion:      "Version de l'OS",
	OSArchitecture: "Architecture",
	UnknownModel:   "Modèle inconnu",
	UnknownVendor:  "Fabricant inconnu",
}

// English mirrors [French] label for label.
var English = Catalog{
	Language:       "en",
	PropertyHeader: "Property",
	ValueHeader:    "Value",

	Architecture:   "Architecture",
	OpModes:        "CPU op-mode(s)",
	ModelName:      "Processor family",
	CoresPerSocket: "Physical cores",
	ThreadsPerCore: "Threads per core",
	Sockets:        "Sockets",
	MaxMHz:         "Max turbo frequency (MHz)",
	Threads:        "Threads",
	MaxGHz:         "Max turbo frequency (GHz)",
	ProcessorError: "Error retrieving processor information",

	MemoryTotal: "Total memory (GB)",

	StorageNonSystem: "Storage (non-system)",
	StorageNone:      "No non-system storage device detected",
	StorageFailed:    "Storage",
	StorageError:     "Error retrieving storage information.",

	Graphics:      "Graphics cards",
	GraphicsNone:  "No graphics card detected",
	GraphicsError: "Error retrieving graphics information.",

	PCName:         "PC name",
	Hostname:       "Machine name (hostname)",
	OSName:         "Operating system",
	OSVersion:      "OS version",
	OSArchitecture: "Architecture",
	UnknownModel:   "Unknown model",
	UnknownVendor:  "Unknown vendor",
}

// CatalogFor returns the catalog for a language code ("fr" or "en").
// An empty code selects [French].
func CatalogFor(lang string) (Catalog, error) {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "", "fr":
		return French, nil
	case "en":
		return English, nil
	default:
		return Catalog{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
}
