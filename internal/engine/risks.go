package engine

import (
	"fmt"
	"strings"

	"dealscope/internal/domain"
)

// Risk thresholds. Budget bands are exclusive: one renovation estimate
// yields one budget risk at the matching severity.
const (
	weakAxisScore = 50

	thinTradeAreaPopulation = 1000
	weakMapRating           = 3.5

	budgetCriticalThreshold = 75000.0
	budgetHighThreshold     = 50000.0
	budgetMediumThreshold   = 25000.0

	criticalHighCount = 3
	blockingHighCount = 2
	moderateMedCount  = 2
)

// RiskInput carries everything the categorizer inspects. Scores may arrive
// from outside the pipeline, so it is the optional-field form.
type RiskInput struct {
	Scores    *domain.ScoreInput
	Snapshot  domain.Snapshot
	Conflicts []domain.Conflict
}

// CategorizeRisks maps sub-scores and raw inputs onto the risk register.
// Every predicate fires independently; several risks may share a category.
// A missing or incomplete scores input yields a typed error payload with an
// empty register and Blocking set, never a panic.
func CategorizeRisks(in RiskInput) domain.RiskAssessment {
	if in.Scores == nil {
		return riskInputError("scores input missing")
	}
	if missing := in.Scores.MissingFields(); len(missing) > 0 {
		return riskInputError(fmt.Sprintf("incomplete scores input: missing %s", strings.Join(missing, ", ")))
	}

	var risks []domain.Risk
	risks = append(risks, locationRisks(*in.Scores.Location, in.Snapshot)...)
	risks = append(risks, marketRisks(*in.Scores.Market, in.Snapshot)...)
	risks = append(risks, operationalRisks(*in.Scores.Operational, in.Snapshot)...)
	risks = append(risks, financialRisks(in)...)

	assessment := domain.RiskAssessment{Risks: risks}

	penalty := 0
	for _, r := range risks {
		penalty += r.Severity.Weight()
	}
	assessment.RiskScore = domain.ClampScore(100 - penalty)

	critical := assessment.CountBySeverity(domain.SeverityCritical)
	high := assessment.CountBySeverity(domain.SeverityHigh)
	medium := assessment.CountBySeverity(domain.SeverityMedium)

	switch {
	case critical > 0 || high >= criticalHighCount:
		assessment.OverallLevel = domain.RiskLevelCritical
	case high >= 1:
		assessment.OverallLevel = domain.RiskLevelHigh
	case medium >= moderateMedCount:
		assessment.OverallLevel = domain.RiskLevelModerate
	default:
		assessment.OverallLevel = domain.RiskLevelLow
	}

	assessment.Blocking = critical > 0 || high >= blockingHighCount
	return assessment
}

// riskInputError is the degraded payload for a structurally bad input: an
// empty register that still blocks the decision.
func riskInputError(msg string) domain.RiskAssessment {
	return domain.RiskAssessment{
		Risks:        []domain.Risk{},
		RiskScore:    0,
		OverallLevel: domain.RiskLevelCritical,
		Blocking:     true,
		Error:        msg,
	}
}

func locationRisks(score int, snap domain.Snapshot) []domain.Risk {
	var risks []domain.Risk
	if score < weakAxisScore {
		risks = append(risks, domain.Risk{
			Category:    domain.RiskLocation,
			Severity:    domain.SeverityHigh,
			Description: fmt.Sprintf("location sub-score %d is below the viability bar", score),
			Impact:      "foot traffic may not sustain the business",
			Mitigation:  "commission an on-site traffic count before committing",
		})
	}
	if snap.Demographic != nil && snap.Demographic.TradeAreaPotential.Population500m < thinTradeAreaPopulation {
		risks = append(risks, domain.Risk{
			Category: domain.RiskLocation,
			Severity: domain.SeverityMedium,
			Description: fmt.Sprintf("trade-area population %d is thin",
				snap.Demographic.TradeAreaPotential.Population500m),
			Impact:     "the walk-in customer base is small",
			Mitigation: "plan for destination clientele or delivery reach",
		})
	}
	if snap.Places != nil && !snap.Places.Found {
		risks = append(risks, domain.Risk{
			Category:    domain.RiskLocation,
			Severity:    domain.SeverityMedium,
			Description: "the business has no map listing",
			Impact:      "online discoverability starts from zero",
			Mitigation:  "claim and populate the listing at takeover",
		})
	}
	return risks
}

func marketRisks(score int, snap domain.Snapshot) []domain.Risk {
	var risks []domain.Risk
	if score < weakAxisScore {
		risks = append(risks, domain.Risk{
			Category:    domain.RiskMarket,
			Severity:    domain.SeverityHigh,
			Description: fmt.Sprintf("market sub-score %d is below the viability bar", score),
			Impact:      "reputation and demand signals are weak",
			Mitigation:  "budget a relaunch marketing campaign",
		})
	}
	if snap.Competitor != nil {
		switch snap.Competitor.DensityLevel {
		case domain.DensityVeryHigh:
			risks = append(risks, domain.Risk{
				Category:    domain.RiskMarket,
				Severity:    domain.SeverityHigh,
				Description: "competitor density is very high",
				Impact:      "margin pressure from saturated local supply",
				Mitigation:  "differentiate the offer before opening",
			})
		case domain.DensityHigh:
			risks = append(risks, domain.Risk{
				Category:    domain.RiskMarket,
				Severity:    domain.SeverityMedium,
				Description: "competitor density is high",
				Impact:      "customer acquisition will be contested",
				Mitigation:  "map competitor pricing and position against it",
			})
		}
	}
	if snap.Places != nil && snap.Places.Found && snap.Places.Rating > 0 && snap.Places.Rating < weakMapRating {
		risks = append(risks, domain.Risk{
			Category:    domain.RiskMarket,
			Severity:    domain.SeverityHigh,
			Description: fmt.Sprintf("map rating %.1f signals a damaged reputation", snap.Places.Rating),
			Impact:      "existing goodwill is a liability, not an asset",
			Mitigation:  "rebrand rather than inherit the listing history",
		})
	}
	return risks
}

func operationalRisks(score int, snap domain.Snapshot) []domain.Risk {
	var risks []domain.Risk
	if score < weakAxisScore {
		risks = append(risks, domain.Risk{
			Category:    domain.RiskOperational,
			Severity:    domain.SeverityHigh,
			Description: fmt.Sprintf("operational sub-score %d is below the viability bar", score),
			Impact:      "the premises cannot open without significant work",
			Mitigation:  "obtain contractor quotes before the offer",
		})
	}
	if snap.Photo != nil && snap.Photo.Analyzed {
		budget := snap.Photo.RenovationBudget.High
		switch {
		case budget > budgetCriticalThreshold:
			risks = append(risks, domain.Risk{
				Category:     domain.RiskOperational,
				Severity:     domain.SeverityCritical,
				Description:  fmt.Sprintf("renovation estimate reaches %.0f", budget),
				Impact:       "the works budget rivals the acquisition price",
				Mitigation:   "renegotiate the price against the renovation bill",
				CostEstimate: budget,
			})
		case budget > budgetHighThreshold:
			risks = append(risks, domain.Risk{
				Category:     domain.RiskOperational,
				Severity:     domain.SeverityHigh,
				Description:  fmt.Sprintf("renovation estimate reaches %.0f", budget),
				Impact:       "heavy works before opening",
				Mitigation:   "stage the renovation and open partially",
				CostEstimate: budget,
			})
		case budget > budgetMediumThreshold:
			risks = append(risks, domain.Risk{
				Category:     domain.RiskOperational,
				Severity:     domain.SeverityMedium,
				Description:  fmt.Sprintf("renovation estimate reaches %.0f", budget),
				Impact:       "notable refresh works required",
				Mitigation:   "fold the estimate into the financing plan",
				CostEstimate: budget,
			})
		}
	}
	return risks
}

func financialRisks(in RiskInput) []domain.Risk {
	var risks []domain.Risk
	if *in.Scores.Financial < weakAxisScore {
		risks = append(risks, domain.Risk{
			Category:    domain.RiskFinancial,
			Severity:    domain.SeverityCritical,
			Description: fmt.Sprintf("financial sub-score %d is below the viability bar", *in.Scores.Financial),
			Impact:      "the potential/investment ratio does not close",
			Mitigation:  "revisit the price or walk away",
		})
	}

	unresolved := 0
	for _, c := range in.Conflicts {
		if c.IsBlocking() && !c.Resolved {
			unresolved++
		}
	}
	if unresolved > 0 {
		risks = append(risks, domain.Risk{
			Category:    domain.RiskFinancial,
			Severity:    domain.SeverityHigh,
			Description: fmt.Sprintf("%d blocking conflict(s) remain unresolved", unresolved),
			Impact:      "the valuation rests on contested data",
			Mitigation:  "revalidate the conflicting signals before any commitment",
		})
	}

	if in.Scores.Overall != nil && *in.Scores.Overall < weakAxisScore {
		risks = append(risks, domain.Risk{
			Category:    domain.RiskFinancial,
			Severity:    domain.SeverityCritical,
			Description: fmt.Sprintf("overall score %d is below the viability bar", *in.Scores.Overall),
			Impact:      "the opportunity does not meet the investment threshold",
			Mitigation:  "decline unless the price reflects the weakness",
		})
	}
	return risks
}
