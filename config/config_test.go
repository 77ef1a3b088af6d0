package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timesheet.yaml")
	data := `
input:
  name: toggl
  params:
    workspace: "12345"
resolver:
  name: lookup
  params:
    fallback: verbatim
  mappings:
    - description: Standup
      task: MEET-1
    - description: Fix login
      project: Web
      task: WEB-42
output:
  name: csv
  params:
    path: out.csv
`
	err := os.WriteFile(path, []byte(data), 0600)
	if err != nil {
		t.Fatalf("os.WriteFile: %s", err.Error())
	}

	conf, err := Load(path)
	if err != nil {
		t.Errorf("Load: %s", err.Error())
		return
	}

	if conf.Input == nil || conf.Input.Name != "toggl" || conf.Input.Params["workspace"] != "12345" {
		t.Errorf("unexpected input config: %#v", conf.Input)
	}

	if conf.Resolver == nil || len(conf.Resolver.Mappings) != 2 {
		t.Errorf("unexpected resolver config: %#v", conf.Resolver)
		return
	}

	if conf.Resolver.Mappings[1].Project != "Web" || conf.Resolver.Mappings[1].Task != "WEB-42" {
		t.Errorf("unexpected mapping: %#v", conf.Resolver.Mappings[1])
	}

	if conf.Output == nil || conf.Output.Params["path"] != "out.csv" {
		t.Errorf("unexpected output config: %#v", conf.Output)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Errorf("expected an error for an explicit path that does not exist")
	}
}

func TestLoadDefaultMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	conf, err := Load("")
	if err != nil {
		t.Errorf("Load: %s", err.Error())
		return
	}

	if conf.Input != nil || conf.Resolver != nil || conf.Output != nil {
		t.Errorf("expected an empty config, got %#v", conf)
	}
}
