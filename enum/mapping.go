package enum

// AONIDTypeForSpecies returns the gene identifier scheme that the
// Alliance orthology network uses for a species.
func AONIDTypeForSpecies(s Species) (GeneIdentifier, bool) {
	switch s {
	case MusMusculus:
		return MGI, true
	case HomoSapiens:
		return HGNC, true
	case RattusNorvegicus:
		return RGD, true
	case DanioRerio:
		return ZFIN, true
	case DrosophilaMelanogaster:
		return FlyBase, true
	case MacacaMulatta, CanisFamiliaris:
		return Entrez, true
	case CaenorhabditisElegans:
		return Wormbase, true
	case SaccharomycesCerevisiae:
		return SGD, true
	case GallusGallus:
		return CGNC, true
	}
	return 0, false
}
