package extract

import (
	"github.com/gyeh/mbsfacts/internal/model"
)

// Relations scans a description (and optionally the derived-fee text, which
// may reference other items for fee calculation) for relationship phrases and
// nearby item numbers. Empty description yields nil. Self-references are
// discarded; the result is deduplicated preserving first-seen order.
//
// Bare "item N" mentions with no qualifying phrase are recorded as excludes.
// That fallback is deliberately conservative and over-matches; see the
// package tests, which pin it down as documented behavior.
func (e *Extractor) Relations(itemNum, description, derivedFee string) []model.Relation {
	var relations []model.Relation
	text := description

	// Specific exclusions referencing concrete items.
	for _, p := range excludePhrases {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			for _, target := range e.itemNumbersAround(text, loc[0]) {
				if target != itemNum {
					relations = append(relations, relation(itemNum, model.RelExcludes, target, p.phrase))
				}
			}
		}
	}

	// Generic exclusion with no identifiable target item.
	for _, p := range genericExcludePhrases {
		if p.re.MatchString(text) {
			relations = append(relations, model.Relation{
				ItemNum: itemNum,
				Type:    model.RelGenericExcludes,
				Detail:  p.phrase,
			})
		}
	}

	// Same-day exclusions.
	for _, p := range sameDayExcludePhrases {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			for _, target := range e.itemNumbersAround(text, loc[0]) {
				if target != itemNum {
					relations = append(relations, relation(itemNum, model.RelSameDayExcludes, target, p.phrase))
				}
			}
		}
	}

	// Same-day allowances.
	for _, p := range allowSameDayPhrases {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			for _, target := range e.itemNumbersAround(text, loc[0]) {
				if target != itemNum {
					relations = append(relations, relation(itemNum, model.RelAllowsSameDay, target, p.phrase))
				}
			}
		}
	}

	// Prerequisites (heuristic).
	for _, p := range prereqPhrases {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			for _, target := range e.itemNumbersAround(text, loc[0]) {
				if target != itemNum {
					relations = append(relations, relation(itemNum, model.RelPrerequisite, target, p.phrase))
				}
			}
		}
	}

	// Generic item-list capture (fallback).
	for _, m := range itemListRE.FindAllStringSubmatch(text, -1) {
		for _, target := range expandItemList(m[1]) {
			if target != itemNum {
				relations = append(relations, relation(itemNum, model.RelExcludes, target, "items list"))
			}
		}
	}

	// Single item mentions (conservative fallback).
	for _, m := range singleItemRE.FindAllStringSubmatch(text, -1) {
		if target := m[1]; target != itemNum {
			relations = append(relations, relation(itemNum, model.RelExcludes, target, "single item mention"))
		}
	}

	// Derived-fee cross-references.
	if derivedFee != "" {
		for _, m := range singleItemRE.FindAllStringSubmatch(derivedFee, -1) {
			if target := m[1]; target != itemNum {
				relations = append(relations, relation(itemNum, model.RelDerivedFeeRef, target, "derived fee"))
			}
		}
	}

	return dedupRelations(relations)
}

func relation(itemNum string, t model.RelationType, target, detail string) model.Relation {
	return model.Relation{ItemNum: itemNum, Type: t, TargetItemNum: &target, Detail: detail}
}

// dedupRelations collapses identical 4-tuples, preserving first-seen order.
func dedupRelations(relations []model.Relation) []model.Relation {
	if len(relations) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(relations))
	out := relations[:0]
	for _, r := range relations {
		target := "\x00"
		if r.TargetItemNum != nil {
			target = *r.TargetItemNum
		}
		key := r.ItemNum + "\x1f" + string(r.Type) + "\x1f" + target + "\x1f" + r.Detail
		if !seen[key] {
			seen[key] = true
			out = append(out, r)
		}
	}
	return out
}
