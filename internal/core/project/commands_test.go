package project

import (
	"slices"
	"strings"
	"testing"
)

func TestGeneratorCommandNext(t *testing.T) {
	ans := validAnswers()
	cmd := GeneratorCommand(ans)

	if cmd.Name != "npx" {
		t.Errorf("name = %q", cmd.Name)
	}
	joined := strings.Join(cmd.Args, " ")
	for _, want := range []string{"create-next-app@latest", "my-app", "--ts", "--app", "--skip-install", "--disable-git", "--no-tailwind"} {
		if !strings.Contains(joined, want) {
			t.Errorf("next command missing %q: %s", want, joined)
		}
	}

	ans.Language = LanguageJS
	ans.Routing = RoutingPages
	joined = strings.Join(GeneratorCommand(ans).Args, " ")
	if !strings.Contains(joined, "--js") || !strings.Contains(joined, "--no-app") {
		t.Errorf("js/pages flags missing: %s", joined)
	}
}

func TestGeneratorCommandReact(t *testing.T) {
	ans := Answers{ProjectName: "demo", Framework: FrameworkReact, Language: LanguageTS, UILibrary: UILibraryNone}
	cmd := GeneratorCommand(ans)

	if cmd.Name != "npm" {
		t.Errorf("name = %q", cmd.Name)
	}
	want := []string{"create", "vite@latest", "demo", "--", "--template", "react-ts"}
	if !slices.Equal(cmd.Args, want) {
		t.Errorf("args = %v, want %v", cmd.Args, want)
	}

	ans.Language = LanguageJS
	cmd = GeneratorCommand(ans)
	if cmd.Args[len(cmd.Args)-1] != "react" {
		t.Errorf("js template = %q", cmd.Args[len(cmd.Args)-1])
	}
}

func TestInstallCommand(t *testing.T) {
	cmd := InstallCommand(false, "axios", "js-cookie")
	want := []string{"install", "axios", "js-cookie"}
	if cmd.Name != "npm" || !slices.Equal(cmd.Args, want) {
		t.Errorf("InstallCommand = %v %v", cmd.Name, cmd.Args)
	}

	dev := InstallCommand(true, "tailwindcss")
	if !slices.Contains(dev.Args, "--save-dev") {
		t.Errorf("dev install missing --save-dev: %v", dev.Args)
	}
}

func TestUIPackages(t *testing.T) {
	if pkgs := UIPackages(UILibraryNone); pkgs != nil {
		t.Errorf("none = %v", pkgs)
	}
	if pkgs := UIPackages(UILibraryAntd); !slices.Contains(pkgs, "antd") {
		t.Errorf("antd = %v", pkgs)
	}
	if pkgs := UIPackages(UILibraryShadcn); !slices.Contains(pkgs, "tailwind-merge") {
		t.Errorf("shadcn = %v", pkgs)
	}
}
