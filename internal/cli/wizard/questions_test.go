package wizard

import "testing"

func questionByID(t *testing.T, qs []Question, id string) *Question {
	t.Helper()
	for i := range qs {
		if qs[i].ID == id {
			return &qs[i]
		}
	}
	t.Fatalf("question %q not found", id)
	return nil
}

func TestDefaultQuestionsCoverAllAxes(t *testing.T) {
	qs := DefaultQuestions(Defaults{})
	for _, id := range []string{"project_name", "framework", "language", "routing", "auth", "auth_storage", "ui_library", "redux"} {
		questionByID(t, qs, id)
	}
}

func TestDefaultQuestionsDefaults(t *testing.T) {
	qs := DefaultQuestions(Defaults{})
	if questionByID(t, qs, "project_name").Default != "my-app" {
		t.Error("project name default")
	}
	if questionByID(t, qs, "framework").Default != "next" {
		t.Error("framework default")
	}
	if questionByID(t, qs, "auth").Default != "true" {
		t.Error("auth default")
	}
	if questionByID(t, qs, "redux").Default != "false" {
		t.Error("redux default")
	}

	custom := DefaultQuestions(Defaults{Framework: "react", Language: "js", UILibrary: "antd", ProjectName: "acme"})
	if questionByID(t, custom, "framework").Default != "react" {
		t.Error("framework preset ignored")
	}
	if questionByID(t, custom, "project_name").Default != "acme" {
		t.Error("project name preset ignored")
	}
}

func TestRoutingShownOnlyForNext(t *testing.T) {
	qs := DefaultQuestions(Defaults{})
	routing := questionByID(t, qs, "routing")

	if !routing.Condition(&Result{Framework: "next"}) {
		t.Error("routing hidden for next")
	}
	if routing.Condition(&Result{Framework: "react"}) {
		t.Error("routing shown for react")
	}
}

func TestStorageShownOnlyWithAuth(t *testing.T) {
	qs := DefaultQuestions(Defaults{})
	storage := questionByID(t, qs, "auth_storage")

	if !storage.Condition(&Result{Auth: true}) {
		t.Error("storage hidden with auth")
	}
	if storage.Condition(&Result{Auth: false}) {
		t.Error("storage shown without auth")
	}
}

func TestSaveAnswer(t *testing.T) {
	r := &Result{}
	saveAnswer("project_name", "demo", r)
	saveAnswer("framework", "next", r)
	saveAnswer("language", "ts", r)
	saveAnswer("routing", "app", r)
	saveAnswer("auth", "true", r)
	saveAnswer("auth_storage", "cookie", r)
	saveAnswer("ui_library", "shadcn", r)
	saveAnswer("redux", "false", r)

	want := Result{
		ProjectName: "demo",
		Framework:   "next",
		Language:    "ts",
		Routing:     "app",
		Auth:        true,
		AuthStorage: "cookie",
		UILibrary:   "shadcn",
		Redux:       false,
	}
	if *r != want {
		t.Errorf("result = %+v, want %+v", *r, want)
	}
}

func TestRunRejectsEmptyQuestionSet(t *testing.T) {
	if _, err := Run(nil); err != ErrNoQuestions {
		t.Fatalf("Run(nil) = %v, want ErrNoQuestions", err)
	}
}

func TestStorageQuestion(t *testing.T) {
	qs := StorageQuestion()
	if len(qs) != 1 || qs[0].ID != "auth_storage" {
		t.Fatalf("StorageQuestion = %+v", qs)
	}
	if qs[0].Default != "cookie" {
		t.Errorf("storage default = %q", qs[0].Default)
	}
}
