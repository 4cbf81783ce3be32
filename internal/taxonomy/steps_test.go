package taxonomy

import "testing"

func TestStepIndexOrder(t *testing.T) {
	want := []ProcessStep{StepVisit, StepEstimate, StepAssign, StepOrder, StepInstall, StepSettle}
	got := Steps()
	if len(got) != len(want) {
		t.Fatalf("Steps() returned %d stages, want %d", len(got), len(want))
	}
	for i, s := range want {
		if got[i] != s {
			t.Errorf("Steps()[%d] = %s, want %s", i, got[i], s)
		}
		if idx := StepIndex(s); idx != i {
			t.Errorf("StepIndex(%s) = %d, want %d", s, idx, i)
		}
	}
	if idx := StepIndex("paint"); idx != -1 {
		t.Errorf("StepIndex(paint) = %d, want -1", idx)
	}
}

func TestStateOfExactlyOneCurrent(t *testing.T) {
	for _, current := range Steps() {
		curIdx := StepIndex(current)
		currents := 0
		for i, s := range Steps() {
			state := StateOf(s, current)
			switch {
			case i < curIdx:
				if state != StateCompleted {
					t.Errorf("StateOf(%s, %s) = %s, want completed", s, current, state)
				}
			case i == curIdx:
				if state != StateCurrent {
					t.Errorf("StateOf(%s, %s) = %s, want current", s, current, state)
				}
				currents++
			default:
				if state != StateFuture {
					t.Errorf("StateOf(%s, %s) = %s, want future", s, current, state)
				}
			}
		}
		if currents != 1 {
			t.Errorf("current=%s marked %d stages current, want exactly 1", current, currents)
		}
	}
}

func TestStateOfUnknownStepAllFuture(t *testing.T) {
	for _, s := range Steps() {
		if state := StateOf(s, "demolish"); state != StateFuture {
			t.Errorf("StateOf(%s, demolish) = %s, want future", s, state)
		}
	}
}

func TestStateOfInstallScenario(t *testing.T) {
	// A project at 시공 (install): the four earlier stages are done,
	// install is current, 정산 (settle) is still ahead.
	for _, s := range []ProcessStep{StepVisit, StepEstimate, StepAssign, StepOrder} {
		if state := StateOf(s, StepInstall); state != StateCompleted {
			t.Errorf("StateOf(%s, install) = %s, want completed", s, state)
		}
	}
	if state := StateOf(StepInstall, StepInstall); state != StateCurrent {
		t.Errorf("StateOf(install, install) = %s, want current", state)
	}
	if state := StateOf(StepSettle, StepInstall); state != StateFuture {
		t.Errorf("StateOf(settle, install) = %s, want future", state)
	}
}

func TestStepLabels(t *testing.T) {
	cases := map[ProcessStep]string{
		StepVisit:    "현장방문",
		StepEstimate: "견적",
		StepAssign:   "배정",
		StepOrder:    "발주",
		StepInstall:  "시공",
		StepSettle:   "정산",
	}
	for step, label := range cases {
		if got := step.Label(); got != label {
			t.Errorf("%s.Label() = %s, want %s", step, got, label)
		}
	}
	if got := ProcessStep("paint").Label(); got != "paint" {
		t.Errorf("unknown step label = %s, want raw key", got)
	}
}

func TestEnumValidity(t *testing.T) {
	if !StatusOnHold.Valid() || ProjectStatus("archived").Valid() {
		t.Error("project status validity broken")
	}
	if !PriorityUrgent.Valid() || Priority("asap").Valid() {
		t.Error("priority validity broken")
	}
	if !DocSettlement.Valid() || DocType("receipt").Valid() {
		t.Error("doc type validity broken")
	}
	if !RiskCritical.Valid() || RiskLevel("fatal").Valid() {
		t.Error("risk level validity broken")
	}
	if !LogPhoto.Valid() || LogType("video").Valid() {
		t.Error("log type validity broken")
	}
	if RoleAdmin.Level() != 3 || RoleManager.Level() != 2 || RoleStaff.Level() != 1 {
		t.Error("role levels broken")
	}
}
