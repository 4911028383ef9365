package sentiment

// Each rule function applies its checks in order; checks are not exclusive
// unless chained with else. A positive phase-out delta means a later exit.

func policyMakers(d deltas, th Thresholds, t *tally) {
	if d.re2030 > th.MajorShift {
		t.gain("Stronger climate action in 2030", 2)
	} else if d.re2030 > th.MinorShift {
		t.gain("Improved renewable energy targets", 1)
	}
	if d.re2040 > th.MajorShift {
		t.gain("Ambitious long-term decarbonization", 2)
	}
	if d.phaseout < -th.PhaseoutShift {
		t.gain("Earlier coal phaseout strengthens NDC compliance", 3)
	} else if d.phaseout < 0 {
		t.gain("Accelerated transition away from coal", 1)
	}
	if d.phaseout > th.PhaseoutShift {
		t.lose("Delayed coal phaseout may conflict with climate commitments", 2)
	}
	if d.adj.REShare2030 > th.PolicyFeasibility2030 {
		t.lose("Very high renewable targets may raise feasibility questions", 1)
	}
	if d.re2030 < -th.MajorShift {
		t.lose("Reduced renewable ambition weakens climate position", 3)
	}
}

func gridOperators(d deltas, th Thresholds, t *tally) {
	if d.re2030 > th.RapidShift || d.re2040 > th.ExtremeShift {
		t.lose("Rapid renewable integration may strain grid management", 3)
	} else if d.re2030 > th.MinorShift {
		t.lose("Faster renewable deployment requires grid upgrades", 1)
	}
	if d.phaseout < -th.PhaseoutShift {
		t.lose("Earlier coal retirement raises baseload adequacy concerns", 2)
	}
	if d.phaseout > th.PhaseoutShift {
		t.gain("More time to develop grid flexibility solutions", 2)
	}
	if abs(d.re2030) <= th.MinorShift && abs(d.re2040) <= th.MajorShift {
		t.gain("Gradual transition allows for proper grid preparation", 1)
	}
	if d.adj.REShare2040 > th.GridVRECeiling2040 {
		t.lose("Very high VRE penetration requires extensive storage/flexibility", 2)
	}
}

func industry(d deltas, th Thresholds, t *tally) {
	if d.re2030 > th.MajorShift {
		t.gain("New opportunities in renewable energy supply chain", 1)
		t.lose("Concerns about power reliability during transition", 1)
	}
	if d.phaseout < -th.PhaseoutShift {
		t.lose("Rapid coal exit may increase power costs", 2)
	} else if d.phaseout < 0 {
		t.lose("Accelerated transition could affect industrial tariffs", 1)
	}
	if d.phaseout > th.PhaseoutShift {
		t.gain("Extended coal operation maintains affordable baseload", 1)
	}
	if d.re2040 > th.MinorShift && d.re2040 < th.ExtremeShift {
		t.gain("Steady renewable growth supports local manufacturing", 2)
	}
}

func public(d deltas, th Thresholds, t *tally) {
	if d.re2030 > th.MajorShift {
		t.gain("More renewable energy means cleaner air and health benefits", 2)
	} else if d.re2030 > th.MinorShift {
		t.gain("Improved air quality from more clean energy", 1)
	}
	if d.phaseout < -th.PhaseoutShift {
		t.gain("Earlier coal phaseout reduces air pollution sooner", 3)
	} else if d.phaseout < 0 {
		t.gain("Faster transition to clean energy benefits public health", 1)
	}
	if d.phaseout > th.PhaseoutShift {
		t.lose("Continued coal use prolongs air pollution impacts", 2)
	}
	if d.re2030 < -th.MajorShift {
		t.lose("Less renewable energy means worse air quality", 2)
	}
	if abs(d.re2030) > th.ExtremeShift {
		t.lose("Very rapid changes may affect electricity prices", 1)
	}
}

func csosNGOs(d deltas, th Thresholds, t *tally) {
	if d.re2030 > th.RapidShift {
		t.gain("Major acceleration toward 100% renewable energy", 4)
	} else if d.re2030 > th.MinorShift {
		t.gain("Increased renewable targets show climate leadership", 2)
	}
	if d.re2040 > th.MajorShift {
		t.gain("Ambitious 2040 targets align with Paris Agreement", 2)
	}
	switch {
	case d.phaseout < -th.LargePhaseoutShift:
		t.gain("Rapid coal phaseout demonstrates climate urgency", 5)
	case d.phaseout < -th.PhaseoutShift:
		t.gain("Accelerated coal exit critical for climate goals", 3)
	case d.phaseout < 0:
		t.gain("Earlier coal retirement aligns with science-based targets", 1)
	}
	if d.phaseout > th.PhaseoutShift {
		t.lose("Delayed coal phaseout incompatible with 1.5°C pathway", 5)
	} else if d.phaseout > 0 {
		t.lose("Any delay in coal exit undermines climate commitments", 2)
	}
	if d.re2030 < -th.MinorShift {
		t.lose("Reduced renewable ambition is unacceptable for climate action", 4)
	}
}

func scientific(d deltas, th Thresholds, t *tally) {
	if d.re2030 > th.MajorShift {
		if d.adj.REShare2030 < th.ScientificPlausible2030 {
			t.gain("Accelerated renewable deployment aligns with climate science", 2)
		} else {
			t.lose("Very rapid renewable integration needs careful technical validation", 1)
		}
	}
	if d.phaseout < -th.PhaseoutShift {
		t.gain("Earlier coal phaseout reduces cumulative emissions", 2)
	}
	if d.phaseout > th.PhaseoutShift {
		t.lose("Delayed coal exit consumes remaining carbon budget", 2)
	}
	if d.adj.REShare2040 > th.ScientificVRECeiling2040 {
		t.lose("Near-100% VRE requires rigorous technical feasibility assessment", 2)
	}
	if abs(d.re2030) <= th.MajorShift && d.phaseout <= 0 {
		t.gain("Balanced approach allows for evidence-based implementation", 1)
	}
}

func finance(d deltas, th Thresholds, t *tally) {
	if d.re2030 > th.RapidShift {
		t.lose("Very rapid renewable scale-up increases execution risk", 2)
		t.gain("Large-scale renewable investment opportunities", 1)
	} else if d.re2030 > th.MinorShift {
		t.gain("Growing renewable market offers attractive returns", 2)
	}
	if d.phaseout < -th.PhaseoutShift {
		t.lose("Early coal retirement risks stranded assets", 3)
	} else if d.phaseout < 0 {
		t.lose("Accelerated coal phaseout affects asset valuations", 1)
	}
	if d.phaseout > th.PhaseoutShift {
		t.lose("Delayed transition increases long-term policy risk", 1)
	}
	if abs(d.re2030) <= th.MajorShift && abs(d.phaseout) <= th.PhaseoutShift {
		t.gain("Gradual transition provides investment certainty", 2)
	}
}

func regionalBodies(d deltas, th Thresholds, t *tally) {
	if d.re2030 > th.MajorShift {
		t.gain("Increased renewables create regional power trade opportunities", 2)
	}
	if d.re2040 > th.RapidShift {
		t.gain("High renewable ambition supports regional integration goals", 2)
	}
	if d.phaseout < -th.PhaseoutShift {
		t.gain("Early coal phaseout sets positive example for region", 2)
	}
	if d.phaseout > th.PhaseoutShift {
		t.lose("Delayed transition may lag behind regional peers", 1)
	}
	if d.adj.REShare2040 > th.RegionalVRE2040 {
		t.gain("High VRE share increases value of regional interconnection", 0)
		t.lose("Success depends on regional coordination and grid integration", 0)
	}
}

func developmentPartners(d deltas, th Thresholds, t *tally) {
	if d.re2030 > th.MajorShift {
		t.gain("Strong renewable targets unlock climate finance opportunities", 2)
	}
	if d.re2040 > th.RapidShift {
		t.gain("Ambitious long-term decarbonization aligns with SDGs", 2)
	}
	if d.phaseout < -th.PhaseoutShift {
		t.gain("Early coal phaseout strengthens case for concessional financing", 3)
	} else if d.phaseout < 0 {
		t.gain("Accelerated transition attracts international support", 1)
	}
	if d.phaseout > th.PhaseoutShift {
		t.lose("Delayed coal exit may limit access to climate funds", 2)
	}
	if d.re2030 > th.ExtremeShift {
		t.lose("Very rapid scale-up requires careful debt sustainability analysis", 2)
	}
	if d.re2030 < -th.MajorShift {
		t.lose("Reduced ambition may not qualify for concessional climate finance", 2)
	}
}
