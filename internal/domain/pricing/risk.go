package pricing

import (
	"slices"

	"bidright/internal/domain/entities"
)

var (
	riskScopeCreep = entities.Risk{
		Name:        "Scope Creep",
		Level:       entities.RiskHigh,
		Description: "Complex projects are prone to expanding requirements and unexpected challenges.",
		Mitigation:  "Document detailed requirements upfront and use change orders for scope additions.",
	}
	riskPaymentIntegration = entities.Risk{
		Name:        "Payment Integration Complexity",
		Level:       entities.RiskMedium,
		Description: "Payment gateways may require additional security measures and testing.",
		Mitigation:  "Allow extra time for payment testing and consult security best practices.",
	}
	riskExternalAPI = entities.Risk{
		Name:        "External API Dependency",
		Level:       entities.RiskMedium,
		Description: "Reliance on third-party APIs introduces potential points of failure.",
		Mitigation:  "Build fallback mechanisms and monitor API status regularly.",
	}
	riskSubjectiveFeedback = entities.Risk{
		Name:        "Subjective Feedback Cycles",
		Level:       entities.RiskMedium,
		Description: "Design work is subjective and may lead to multiple revision cycles.",
		Mitigation:  "Set clear revision limits and use design questionnaires to clarify preferences early.",
	}
	riskRushedTimeline = entities.Risk{
		Name:        "Rushed Timeline",
		Level:       entities.RiskHigh,
		Description: "Accelerated timeline may compromise quality or increase stress.",
		Mitigation:  "Clarify which elements can be simplified to meet the timeline while preserving quality.",
	}
	riskGeneral = entities.Risk{
		Name:        "General Project Risk",
		Level:       entities.RiskMedium,
		Description: "All projects carry inherent risks related to timeline, scope, and quality expectations.",
		Mitigation:  "Clear communication, detailed contracts, and regular progress updates help mitigate general project risks.",
	}
	riskTimelineUncertainty = entities.Risk{
		Name:        "Timeline Uncertainty",
		Level:       entities.RiskMedium,
		Description: "Complex projects often encounter unexpected challenges that affect timelines.",
		Mitigation:  "Build a 20% buffer into your timeline estimates and communicate it with the client.",
	}
)

// AssessRisks lists the risks that apply to a project configuration, most
// general first. The input is expected to be normalized.
func AssessRisks(in entities.EstimateInput) []entities.Risk {
	demanding := in.Complexity == entities.ComplexityHigh || in.Complexity == entities.ComplexityExpert
	has := func(feature string) bool { return slices.Contains(in.FeatureIDs, feature) }

	risks := []entities.Risk{}
	if demanding {
		risks = append(risks, riskScopeCreep)
	}

	switch in.IndustryID {
	case "webdev":
		if in.ProjectTypeID == "ecommerce" {
			risks = append(risks, riskPaymentIntegration)
		}
		if has("api") {
			risks = append(risks, riskExternalAPI)
		}
	case "design":
		risks = append(risks, riskSubjectiveFeedback)
		if has("rush") {
			risks = append(risks, riskRushedTimeline)
		}
	default:
		risks = append(risks, riskGeneral)
	}

	if demanding {
		risks = append(risks, riskTimelineUncertainty)
	}
	return risks
}
