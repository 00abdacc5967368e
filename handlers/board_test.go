package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/boardgate/boardgate/models"
	"github.com/boardgate/boardgate/phases"
	"github.com/boardgate/boardgate/roster"
	"github.com/boardgate/boardgate/testutil"
)

func TestGetBoard(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewBoardHandler(st)

	testutil.SeedVotes(t, st, 1, roster.Size())
	testutil.SeedVotes(t, st, 2, 2)

	req := testutil.MakeRequest("GET", "/board", nil, nil)
	w := httptest.NewRecorder()
	handler.GetBoard(w, req)
	testutil.AssertStatus(t, w, 200)

	var board models.BoardResponse
	testutil.AssertJSON(t, w, &board)

	if board.ActivePhase != 2 {
		t.Errorf("Expected active phase 2, got %d", board.ActivePhase)
	}
	if board.AllComplete {
		t.Error("Expected board not all-complete")
	}
	if len(board.Phases) != phases.Count() {
		t.Fatalf("Expected %d phases, got %d", phases.Count(), len(board.Phases))
	}
	if board.Phases[0].Status != models.StatusCompleted {
		t.Errorf("Expected phase 1 completed, got %s", board.Phases[0].Status)
	}
	if board.Phases[1].Status != models.StatusActive {
		t.Errorf("Expected phase 2 active, got %s", board.Phases[1].Status)
	}
	if board.Phases[2].Status != models.StatusLocked {
		t.Errorf("Expected phase 3 locked, got %s", board.Phases[2].Status)
	}
	if len(board.Phases[0].Votes) != roster.Size() {
		t.Errorf("Expected full phase 1 vote list, got %d", len(board.Phases[0].Votes))
	}
	if board.Phases[0].VotePercent != 100 {
		t.Errorf("Expected phase 1 at 100%%, got %.2f", board.Phases[0].VotePercent)
	}

	// 9 of 28 votes rounds to 32%.
	if board.OverallProgress != 32 {
		t.Errorf("Expected overall progress 32, got %d", board.OverallProgress)
	}

	phase1, _ := phases.ByID(1)
	if board.CompletedDrafts != len(phase1.Drafts) {
		t.Errorf("Expected %d completed drafts, got %d", len(phase1.Drafts), board.CompletedDrafts)
	}
	if board.TotalDrafts != phases.TotalDrafts() {
		t.Errorf("Expected %d total drafts, got %d", phases.TotalDrafts(), board.TotalDrafts)
	}

	// Notifications are capped at five even after nine votes.
	if len(board.Notifications) != 5 {
		t.Errorf("Expected 5 notifications, got %d", len(board.Notifications))
	}

	// Anonymous read carries no member.
	if board.Member != nil {
		t.Errorf("Expected no member for anonymous read, got %+v", board.Member)
	}
}

func TestGetBoardWithSession(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewBoardHandler(st)

	token := testutil.LoginMember(t, st, 0)

	req := testutil.MakeRequest("GET", "/board", nil, map[string]string{"X-Session-Token": token})
	w := httptest.NewRecorder()
	handler.GetBoard(w, req)
	testutil.AssertStatus(t, w, 200)

	var board models.BoardResponse
	testutil.AssertJSON(t, w, &board)
	if board.Member == nil || board.Member.ID != roster.Members()[0].ID {
		t.Errorf("Expected session member in projection, got %+v", board.Member)
	}

	// A forged token degrades to an anonymous read, not an error.
	req = testutil.MakeRequest("GET", "/board", nil, map[string]string{"X-Session-Token": "forged"})
	w = httptest.NewRecorder()
	handler.GetBoard(w, req)
	testutil.AssertStatus(t, w, 200)

	board = models.BoardResponse{}
	testutil.AssertJSON(t, w, &board)
	if board.Member != nil {
		t.Error("Expected no member for forged token")
	}
}
