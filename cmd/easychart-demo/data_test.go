package main

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/frameloss/easychart"
	"github.com/xuri/excelize/v2"
)

func TestReadColumnsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	data := "t, speed, load\n0, 1.5, 10\n1, 2.5, 20\n2, 3.5,\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cols, err := readColumns(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(cols) != 2 {
		t.Fatalf("got %d columns, want 2", len(cols))
	}
	if cols[0].name != "speed" || cols[1].name != "load" {
		t.Fatalf("names = %q, %q", cols[0].name, cols[1].name)
	}
	want := []easychart.Point{easychart.Pt(0, 1.5), easychart.Pt(1, 2.5), easychart.Pt(2, 3.5)}
	if !reflect.DeepEqual(cols[0].points, want) {
		t.Fatalf("speed = %v, want %v", cols[0].points, want)
	}
	if len(cols[1].points) != 2 {
		t.Fatalf("load has %d points, want 2 (blank cell skipped)", len(cols[1].points))
	}
}

func TestReadColumnsXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "x")
	f.SetCellValue(sheetName, "B1", "y")
	f.SetCellValue(sheetName, "A2", 1)
	f.SetCellValue(sheetName, "B2", 10)
	f.SetCellValue(sheetName, "A3", 2)
	f.SetCellValue(sheetName, "B3", 20.5)

	path := filepath.Join(t.TempDir(), "data.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	cols, err := readColumns(path, "")
	if err != nil {
		t.Fatal(err)
	}
	want := []easychart.Point{easychart.Pt(1, 10), easychart.Pt(2, 20.5)}
	if len(cols) != 1 || cols[0].name != "y" || !reflect.DeepEqual(cols[0].points, want) {
		t.Fatalf("columns = %+v", cols)
	}
}

func TestReadColumnsErrors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(empty, []byte("a,b\nc,d\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := readColumns(empty, ""); !errors.Is(err, errNoData) {
		t.Fatalf("err = %v, want errNoData", err)
	}
	if _, err := readColumns(filepath.Join(dir, "data.json"), ""); err == nil {
		t.Fatal("expected unsupported type error")
	}
	if _, err := readColumns(filepath.Join(dir, "missing.csv"), ""); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not exist", err)
	}
}

func TestBuildChartFromData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("x,a,b\n0,1,2\n1,2,3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := buildChart(savedPrefs{Data: path, Background: filepath.Join(t.TempDir(), "none.png"), Alpha: 0.5}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.SeriesCount() != 2 {
		t.Fatalf("SeriesCount() = %d, want 2", c.SeriesCount())
	}
	if img, _ := c.BackgroundImage(); img != nil {
		t.Fatal("missing background image installed")
	}
}

func TestSampleChartExport(t *testing.T) {
	c, err := buildChart(savedPrefs{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.SeriesCount() != 3 || c.AxisCount(easychart.AxisY) != 2 || c.AnnotationCount() != 1 {
		t.Fatalf("unexpected sample chart: %d series, %d y axes", c.SeriesCount(), c.AxisCount(easychart.AxisY))
	}
	out := filepath.Join(t.TempDir(), "out.png")
	if err := exportPNG(c, out, 400, 300); err != nil {
		t.Fatal(err)
	}
	if _, err := easychart.LoadImage(out); err != nil {
		t.Fatal(err)
	}
}

func TestPrefsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)

	if p := loadPrefs(); p.Alpha != 0.35 || p.Data != "" {
		t.Fatalf("defaults = %+v", p)
	}
	want := savedPrefs{Data: "d.csv", Sheet: "S", Background: "bg.png", Alpha: 0.8, Light: true}
	savePrefs(want)
	if got := loadPrefs(); got != want {
		t.Fatalf("loadPrefs() = %+v, want %+v", got, want)
	}
}
