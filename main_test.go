package main

import (
	"testing"

	"matugenium/internal/models"
)

func TestResolveApp(t *testing.T) {
	apps := []models.AppEntry{
		{DesktopID: "firefox.desktop", Name: "Firefox"},
	}

	app, err := resolveApp("firefox", apps, false)
	if err != nil {
		t.Fatalf("resolveApp failed: %v", err)
	}
	if app.DesktopID != "firefox.desktop" {
		t.Errorf("resolveApp = %q", app.DesktopID)
	}

	if _, err := resolveApp("no-such-app", apps, true); err == nil {
		t.Error("exact miss should fail")
	}
}

func TestResolveApp_SyntheticEntryWhenNothingDiscovered(t *testing.T) {
	// With no discoverable applications at all, the raw query stands in
	// as the entry, so generation with a fallback image still works.
	app, err := resolveApp("spotify", nil, false)
	if err != nil {
		t.Fatalf("resolveApp with no apps failed: %v", err)
	}
	if app.Name != "spotify" || app.DesktopID != "spotify" {
		t.Errorf("synthetic entry = %+v", app)
	}
}
