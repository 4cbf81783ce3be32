package handlers

import (
	"testing"

	"sitedesk/internal/models"
	"sitedesk/internal/taxonomy"
)

func TestValidateSiteLogContent(t *testing.T) {
	cases := []struct {
		content string
		ok      bool
	}{
		{"배관공사", false},   // 4 runes
		{"배관공사완", true},   // 5 runes
		{"abcd", false},   // 4 runes
		{"abcde", true},   // 5 runes
		{"  ab  ", false}, // trims to 2
		{"", false},
	}
	for _, tc := range cases {
		msg, ok := ValidateSiteLogContent(tc.content)
		if ok != tc.ok {
			t.Errorf("ValidateSiteLogContent(%q) ok = %v, want %v", tc.content, ok, tc.ok)
		}
		if !ok && msg != "최소 5자 이상 입력해주세요." {
			t.Errorf("rejection message = %q", msg)
		}
	}
}

func TestSplitBatch(t *testing.T) {
	accepted, msg := SplitBatch(12, 10)
	if accepted != 10 {
		t.Errorf("accepted = %d, want 10", accepted)
	}
	if msg != "최대 10개의 이미지만 업로드할 수 있습니다." {
		t.Errorf("cap message = %q", msg)
	}

	accepted, msg = SplitBatch(10, 10)
	if accepted != 10 || msg != "" {
		t.Errorf("exact batch: accepted = %d, msg = %q", accepted, msg)
	}

	accepted, msg = SplitBatch(3, 10)
	if accepted != 3 || msg != "" {
		t.Errorf("small batch: accepted = %d, msg = %q", accepted, msg)
	}
}

func TestValidateImageFile(t *testing.T) {
	cases := []struct {
		name        string
		filename    string
		size        int64
		contentType string
		ok          bool
		msg         string
	}{
		{"jpeg ok", "site.jpg", 1024, "image/jpeg", true, ""},
		{"webp ok", "site.webp", 1024, "", true, ""},
		{"too large", "site.jpg", MaxUploadSize + 1, "image/jpeg", false, "파일 크기가 10MB를 초과합니다."},
		{"at limit", "site.png", MaxUploadSize, "image/png", true, ""},
		{"pdf rejected", "contract.pdf", 1024, "application/pdf", false, "이미지 파일만 업로드할 수 있습니다."},
		{"mime mismatch", "fake.jpg", 1024, "application/octet-stream", false, "이미지 파일만 업로드할 수 있습니다."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg, ok := ValidateImageFile(tc.filename, tc.size, tc.contentType)
			if ok != tc.ok {
				t.Errorf("ok = %v, want %v", ok, tc.ok)
			}
			if msg != tc.msg {
				t.Errorf("msg = %q, want %q", msg, tc.msg)
			}
		})
	}
}

func TestFilterByPriority(t *testing.T) {
	projects := []models.Project{
		{Name: "a", Priority: taxonomy.PriorityLow},
		{Name: "b", Priority: taxonomy.PriorityUrgent},
		{Name: "c", Priority: taxonomy.PriorityUrgent},
	}

	urgent := FilterByPriority(projects, taxonomy.PriorityUrgent)
	if len(urgent) != 2 {
		t.Errorf("urgent filter kept %d projects, want 2", len(urgent))
	}

	// Empty or unknown priority passes everything through.
	if got := FilterByPriority(projects, ""); len(got) != 3 {
		t.Errorf("empty priority filtered to %d, want 3", len(got))
	}
	if got := FilterByPriority(projects, "asap"); len(got) != 3 {
		t.Errorf("unknown priority filtered to %d, want 3", len(got))
	}

	none := FilterByPriority(projects, taxonomy.PriorityHigh)
	if len(none) != 0 {
		t.Errorf("high filter kept %d projects, want 0", len(none))
	}
}

func TestTimelineFor(t *testing.T) {
	stages := TimelineFor(taxonomy.StepInstall)
	if len(stages) != 6 {
		t.Fatalf("timeline has %d stages, want 6", len(stages))
	}

	currents := 0
	for i, st := range stages {
		if st.Order != i+1 {
			t.Errorf("stage %s order = %d, want %d", st.Key, st.Order, i+1)
		}
		if st.State == taxonomy.StateCurrent {
			currents++
			if st.Key != taxonomy.StepInstall {
				t.Errorf("current stage = %s, want install", st.Key)
			}
			if st.Label != "시공" {
				t.Errorf("current label = %s, want 시공", st.Label)
			}
		}
	}
	if currents != 1 {
		t.Errorf("%d current stages, want exactly 1", currents)
	}

	if last := stages[5]; last.Key != taxonomy.StepSettle || last.State != taxonomy.StateFuture {
		t.Errorf("settle stage = %+v, want future", last)
	}
}

func TestTimelineForUnknownStep(t *testing.T) {
	for _, st := range TimelineFor("unknown") {
		if st.State != taxonomy.StateFuture {
			t.Errorf("stage %s state = %s, want future for unknown step", st.Key, st.State)
		}
	}
}
