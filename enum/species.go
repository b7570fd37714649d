package enum

import (
	"errors"
	"fmt"
)

var ErrUnknownSpecies = errors.New("unknown species")

// Species matches the GeneWeaver database species ids.
type Species int

const (
	AllSpecies              Species = 0
	MusMusculus             Species = 1
	HomoSapiens             Species = 2
	RattusNorvegicus        Species = 3
	DanioRerio              Species = 4
	DrosophilaMelanogaster  Species = 5
	MacacaMulatta           Species = 6
	CaenorhabditisElegans   Species = 8
	SaccharomycesCerevisiae Species = 9
	GallusGallus            Species = 10
	CanisFamiliaris         Species = 11
)

var species = newRegistry(
	member[Species]{AllSpecies, "ALL", "All"},
	member[Species]{MusMusculus, "MUS_MUSCULUS", "Mus Musculus"},
	member[Species]{HomoSapiens, "HOMO_SAPIENS", "Homo Sapiens"},
	member[Species]{RattusNorvegicus, "RATTUS_NORVEGICUS", "Rattus Norvegicus"},
	member[Species]{DanioRerio, "DANIO_RERIO", "Danio Rerio"},
	member[Species]{DrosophilaMelanogaster, "DROSOPHILA_MELANOGASTER", "Drosophila Melanogaster"},
	member[Species]{MacacaMulatta, "MACACA_MULATTA", "Macaca Mulatta"},
	member[Species]{CaenorhabditisElegans, "CAENORHABDITIS_ELEGANS", "Caenorhabditis Elegans"},
	member[Species]{SaccharomycesCerevisiae, "SACCHAROMYCES_CEREVISIAE", "Saccharomyces Cerevisiae"},
	member[Species]{GallusGallus, "GALLUS_GALLUS", "Gallus Gallus"},
	member[Species]{CanisFamiliaris, "CANIS_FAMILIARIS", "Canis Familiaris"},
)

// ParseSpecies resolves a batch-file species value. Either the label
// ("Mus Musculus", any case) or the numeric database code is accepted.
func ParseSpecies(s string) (Species, error) {
	v, ok := species.resolve(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSpecies, s)
	}
	return v, nil
}

func (s Species) Name() string   { return species.name(s) }
func (s Species) String() string { return species.label(s) }
func (s Species) Valid() bool    { _, ok := species.get(s); return ok }

func (s Species) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSpecies, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Species) UnmarshalText(b []byte) error {
	v, err := ParseSpecies(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// AllSpeciesValues returns every known species.
func AllSpeciesValues() []Species { return species.values() }
