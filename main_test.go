package main

import (
	"testing"

	"github.com/visualleap/gamelauncher/internal/app"
	"github.com/visualleap/gamelauncher/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Root:         "Data",
			SettingsPath: "launcher.ini",
			EnablePad:    true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"root":     "Data",
			"settings": "launcher.ini",
		},
		Args: []string{"-root", "Data"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["root"] != "Data" {
		t.Fatalf("expected root flag %q, got %v", "Data", flagsValue["root"])
	}
	if flagsValue["settings"] != "launcher.ini" {
		t.Fatalf("expected settings flag, got %v", flagsValue["settings"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestSendCommandRejectsUnknownVerb(t *testing.T) {
	if err := sendCommand("explode"); err == nil {
		t.Fatalf("unknown verb must be rejected")
	}
}
