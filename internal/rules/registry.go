package rules

import (
	"github.com/zemdomu/zemdomu/domain"
)

// factories maps every configurable rule id to its constructor. The set is
// closed; unknown ids in configuration are ignored upstream.
var factories = map[domain.RuleID]func() Rule{
	domain.RuleRequireSectionHeading:       func() Rule { return &sectionHeadingRule{} },
	domain.RuleEnforceHeadingOrder:         func() Rule { return &headingOrderRule{} },
	domain.RuleSingleH1:                    func() Rule { return &singleH1Rule{} },
	domain.RuleRequireAltText:              func() Rule { return &altTextRule{} },
	domain.RuleRequireLabelForFormControls: func() Rule { return &labelRule{} },
	domain.RuleEnforceListNesting:          func() Rule { return &listNestingRule{} },
	domain.RuleRequireLinkText:             func() Rule { return &linkTextRule{} },
	domain.RuleRequireTableCaption:         func() Rule { return &tableCaptionRule{} },
	domain.RulePreventEmptyInlineTags:      func() Rule { return &emptyInlineRule{} },
	domain.RuleRequireHrefOnAnchors:        func() Rule { return &anchorHrefRule{} },
	domain.RuleRequireButtonText:           func() Rule { return &buttonTextRule{} },
	domain.RuleRequireIframeTitle:          func() Rule { return &iframeTitleRule{} },
	domain.RuleRequireHTMLLang:             func() Rule { return &htmlLangRule{} },
	domain.RuleRequireImageInputAlt:        func() Rule { return &imageInputAltRule{} },
	domain.RuleRequireNavLinks:             func() Rule { return &navLinksRule{} },
	domain.RuleUniqueIDs:                   func() Rule { return &uniqueIDsRule{} },
}

// ruleOrder fixes the dispatch order so result content is stable across runs.
var ruleOrder = []domain.RuleID{
	domain.RuleRequireSectionHeading,
	domain.RuleEnforceHeadingOrder,
	domain.RuleSingleH1,
	domain.RuleRequireAltText,
	domain.RuleRequireLabelForFormControls,
	domain.RuleEnforceListNesting,
	domain.RuleRequireLinkText,
	domain.RuleRequireTableCaption,
	domain.RulePreventEmptyInlineTags,
	domain.RuleRequireHrefOnAnchors,
	domain.RuleRequireButtonText,
	domain.RuleRequireIframeTitle,
	domain.RuleRequireHTMLLang,
	domain.RuleRequireImageInputAlt,
	domain.RuleRequireNavLinks,
	domain.RuleUniqueIDs,
}

// HeadingLevel returns the numeric level of a heading tag (h1-h6), or 0
// when the tag is not a heading.
func HeadingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}
