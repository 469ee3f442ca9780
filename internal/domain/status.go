package domain

// statusPhrasings lists every status string known to have been written for a
// stage, canonical label first. Legacy variants stay here forever: old rows
// are never rewritten.
var statusPhrasings = map[Stage][]string{
	StageCreated: {
		StatusCreated,
		StatusNeedsRevision,
		"EM REVISÃO",
		"DEVOLVIDA PARA REVISÃO",
		"CRIADA",
		"NOVA",
	},
	StagePCPApproval: {
		StatusPCPApproval,
		"AGUARDANDO PCP",
		"EM APROVAÇÃO PCP",
	},
	StageClientApproval: {
		StatusClientApproval,
		"Aguardando Clientes",
		"AGUARDANDO CLIENTE",
		"AGUARDANDO ORÇAMENTO",
		"ORÇAMENTO ENVIADO",
		"Aguardando Compras",
		"AGUARDANDO COMERCIAL",
	},
	StageMaintenance: {
		StatusMaintenance,
		"MANUTENÇÃO",
		"OFICINA",
		"LIBERADO PARA MANUTENÇÃO",
	},
	StageFinalReview: {
		StatusFinalReview,
		"CONFERÊNCIA FINAL",
		"EM CONFERÊNCIA",
	},
	StageFinalized: {
		StatusFinalized,
		"FINALIZADO",
		"FINALIZADA",
		"ORÇAMENTO FINALIZADO",
		"CONCLUÍDO",
	},
}

var statusIndex = buildStatusIndex()

func buildStatusIndex() map[string]Stage {
	idx := make(map[string]Stage)
	for stage, phrasings := range statusPhrasings {
		for _, p := range phrasings {
			idx[StatusKey(p)] = stage
		}
	}
	return idx
}

// StatusKey returns the comparison key of a raw status: trimmed, lower-cased,
// whitespace-collapsed and without diacritics.
func StatusKey(raw string) string {
	return FoldDiacritics(NormalizeText(raw))
}

// Canonicalize maps a raw status string to its lifecycle stage.
// Unknown strings map to StageCreated so dirty data stays renderable.
func Canonicalize(raw string) Stage {
	if stage, ok := statusIndex[StatusKey(raw)]; ok {
		return stage
	}
	return StageCreated
}

// IsKnownStatus reports whether raw matches one of the known phrasings.
func IsKnownStatus(raw string) bool {
	_, ok := statusIndex[StatusKey(raw)]
	return ok
}

// StatusKeysForStage returns the comparison keys of every phrasing of stage.
// Repositories filter on the stored status_key column with these.
func StatusKeysForStage(stage Stage) []string {
	phrasings := statusPhrasings[stage]
	keys := make([]string, 0, len(phrasings))
	for _, p := range phrasings {
		keys = append(keys, StatusKey(p))
	}
	return keys
}

// KnownStatusKeys returns the comparison keys of every known phrasing.
// Rows whose key is outside this set belong to StageCreated.
func KnownStatusKeys() []string {
	keys := make([]string, 0, len(statusIndex))
	for _, stage := range Stages() {
		keys = append(keys, StatusKeysForStage(stage)...)
	}
	return keys
}
