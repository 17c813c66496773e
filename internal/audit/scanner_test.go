package audit

import (
	"testing"

	"github.com/nao1215/stkscan/internal/model"
	"github.com/nao1215/stkscan/internal/palette"
)

// TestScanBoard tests counting on a single board.
func TestScanBoard(t *testing.T) {
	t.Parallel()

	t.Run("counts cover every element of an intact board", func(t *testing.T) {
		t.Parallel()

		b := board("Town",
			[2]int{int(palette.Empty), 0},
			[2]int{int(palette.Gem), 9},
			[2]int{int(palette.Gem), 200},
			[2]int{int(palette.Ammo), 3},
			[2]int{int(palette.Forest), 31},
		)
		s := NewScanner(nil)
		got := s.ScanBoard("TOWN.ZZT", 0, &b)

		if got.Standard+got.NonStandard != len(b.Elements) {
			t.Errorf("expected %d classified elements, got %d", len(b.Elements), got.Standard+got.NonStandard)
		}
		if got.Standard != 3 || got.NonStandard != 2 {
			t.Errorf("expected 3 standard / 2 non-standard, got %d / %d", got.Standard, got.NonStandard)
		}
		if got.Warning != nil {
			t.Errorf("expected no warning, got %+v", got.Warning)
		}
	})

	t.Run("details are collected only in detail mode", func(t *testing.T) {
		t.Parallel()

		b := board("Town", [2]int{int(palette.Gem), 200})

		plain := NewScanner(nil).ScanBoard("TOWN.ZZT", 0, &b)
		if len(plain.Details) != 0 {
			t.Errorf("expected no details, got %d", len(plain.Details))
		}

		detailed := NewScanner(nil, WithDetail(true)).ScanBoard("TOWN.ZZT", 0, &b)
		if len(detailed.Details) != 1 {
			t.Fatalf("expected 1 detail, got %d", len(detailed.Details))
		}
	})

	t.Run("unknown element stops only the rest of the board", func(t *testing.T) {
		t.Parallel()

		b := board("Cave",
			[2]int{int(palette.Gem), 9},
			[2]int{int(palette.Gem), 200},
			[2]int{int(palette.Key), 3},
			[2]int{99, 15},
			[2]int{int(palette.Gem), 200},
			[2]int{int(palette.Key), 3},
		)
		obs := &recordingObserver{}
		s := NewScanner(nil, WithObserver(obs), WithDetail(true))
		got := s.ScanBoard("CAVE.ZZT", 4, &b)

		if got.Standard != 2 || got.NonStandard != 1 {
			t.Errorf("expected counts of the first 3 elements (2/1), got %d/%d", got.Standard, got.NonStandard)
		}
		if got.Warning == nil {
			t.Fatal("expected a corruption warning")
		}
		if got.Warning.TypeID != 99 || got.Warning.Tile != 3 || got.Warning.BoardIndex != 4 {
			t.Errorf("unexpected warning %+v", got.Warning)
		}
		if len(obs.warnings) != 1 {
			t.Errorf("expected exactly one warning event, got %d", len(obs.warnings))
		}
		if len(got.Details) != 1 {
			t.Errorf("expected 1 detail before the corruption, got %d", len(got.Details))
		}
	})

	t.Run("restricted only skips unrestricted types", func(t *testing.T) {
		t.Parallel()

		b := board("Town",
			[2]int{int(palette.Empty), 0},
			[2]int{int(palette.Player), 31},
			[2]int{int(palette.Gem), 9},
			[2]int{int(palette.Gem), 200},
		)
		got := NewScanner(nil, WithRestrictedOnly(true)).ScanBoard("TOWN.ZZT", 0, &b)
		if got.Standard != 1 || got.NonStandard != 1 {
			t.Errorf("expected 1/1, got %d/%d", got.Standard, got.NonStandard)
		}
	})

	t.Run("restricted only still detects corruption", func(t *testing.T) {
		t.Parallel()

		b := board("Broken", [2]int{int(palette.Empty), 0}, [2]int{200, 0})
		got := NewScanner(nil, WithRestrictedOnly(true)).ScanBoard("X.ZZT", 0, &b)
		if got.Warning == nil {
			t.Error("expected a corruption warning")
		}
	})

	t.Run("empty board yields zero counts", func(t *testing.T) {
		t.Parallel()

		b := model.Board{Title: "Blank"}
		got := NewScanner(nil).ScanBoard("X.ZZT", 0, &b)
		if got.Standard != 0 || got.NonStandard != 0 || got.Warning != nil {
			t.Errorf("unexpected result %+v", got)
		}
	})
}

// TestAggregate tests world level aggregation.
func TestAggregate(t *testing.T) {
	t.Parallel()

	t.Run("key example yields one standard and one STK element", func(t *testing.T) {
		t.Parallel()

		world := &model.World{
			Name: "EXAMPLE",
			Boards: []model.Board{{
				Title: "Title Screen",
				Elements: []model.Element{
					{TypeID: int(palette.Key), Color: 3, Tile: 0},
					{TypeID: int(palette.Key), Color: 99, Tile: 125},
				},
			}},
		}
		s := NewScanner(nil, WithDetail(true))
		report := s.Aggregate("EXAMPLE.ZZT", world)

		if report.Stats.Standard != 1 || report.Stats.NonStandard != 1 {
			t.Errorf("expected 1/1, got %d/%d", report.Stats.Standard, report.Stats.NonStandard)
		}
		if len(report.Details) != 1 {
			t.Fatalf("expected 1 detail, got %d", len(report.Details))
		}
		want := model.DetailRecord{WorldName: "EXAMPLE.ZZT", BoardTitle: "Title Screen", X: 5, Y: 2, Color: 99}
		if report.Details[0] != want {
			t.Errorf("expected %+v, got %+v", want, report.Details[0])
		}
		if report.Stats.STKPercentage() != 50 {
			t.Errorf("expected 50%%, got %v", report.Stats.STKPercentage())
		}
	})

	t.Run("corrupted board does not stop the world", func(t *testing.T) {
		t.Parallel()

		world := &model.World{
			Name: "MIXED",
			Boards: []model.Board{
				board("First", [2]int{int(palette.Gem), 9}),
				board("Broken", [2]int{int(palette.Gem), 200}, [2]int{77, 0}, [2]int{int(palette.Gem), 9}),
				board("Last", [2]int{int(palette.Gem), 9}, [2]int{int(palette.Gem), 201}),
			},
			Digest: "abc123",
		}
		obs := &recordingObserver{}
		s := NewScanner(nil, WithObserver(obs))
		report := s.Aggregate("MIXED.ZZT", world)

		if report.Stats.Standard != 2 || report.Stats.NonStandard != 2 {
			t.Errorf("expected 2/2, got %d/%d", report.Stats.Standard, report.Stats.NonStandard)
		}
		if report.CorruptedBoards() != 1 {
			t.Fatalf("expected 1 corrupted board, got %d", report.CorruptedBoards())
		}
		if report.Warnings[0].BoardTitle != "Broken" || report.Warnings[0].BoardIndex != 1 {
			t.Errorf("unexpected warning %+v", report.Warnings[0])
		}
		if report.Digest != "abc123" {
			t.Errorf("expected digest to be carried over, got %q", report.Digest)
		}
	})

	t.Run("world without boards yields one zeroed report", func(t *testing.T) {
		t.Parallel()

		report := NewScanner(nil).Aggregate("EMPTY.ZZT", &model.World{})
		if report.Stats == nil || report.Stats.Total() != 0 {
			t.Errorf("expected zero stats, got %+v", report.Stats)
		}
		if report.Stats.STKPercentage() != 0 {
			t.Errorf("expected 0%%, got %v", report.Stats.STKPercentage())
		}
	})
}
