package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"goldenpotato/internal/domain"
)

func enterPhase(rig *testRig, phase Phase, args map[string]any) {
	fields := map[string]any{"phase": string(phase)}
	if args != nil {
		fields["args"] = args
	}
	rig.engine.Apply(notif(KindPhaseChanged, fields))
}

func TestPlayerTurnSelectionDrivesPlayAction(t *testing.T) {
	rig := newTestRig(1)
	rig.view.ReplaceHand([]domain.Card{
		{ID: 1, Type: domain.CardAction, TypeArg: domain.Encode(3, 1, false)},
		{ID: 2, Type: domain.CardPotato, TypeArg: domain.Encode(0, 1, false)},
	})

	enterPhase(rig, PhasePlayerTurn, nil)
	require.Equal(t, []string{"endTurn"}, rig.surface.actionIDs(), "empty selection offers only end turn")

	rig.machine.ToggleCard(1)
	ids := rig.surface.actionIDs()
	require.Equal(t, []string{"play", "endTurn"}, ids, "end turn stays last")

	rig.machine.Press("play")
	require.Equal(t, []string{"playCard"}, rig.dispatcher.names())
	require.NotNil(t, rig.view.DiscardTop)
	require.EqualValues(t, 1, rig.view.DiscardTop.ID, "optimistic discard top")
	require.Len(t, rig.view.Hand, 1, "optimistic removal from hand")
}

func TestPlayerTurnInactiveSeatHasNoActions(t *testing.T) {
	rig := newTestRig(1)
	enterPhase(rig, PhasePlayerTurn, map[string]any{"active": false})
	require.Empty(t, rig.surface.actions)

	rig.machine.Press("endTurn")
	require.Empty(t, rig.dispatcher.names(), "ineligible seat must not act")
}

func TestReactionSkipAndExpiryFireOnce(t *testing.T) {
	rig := newTestRig(1)
	enterPhase(rig, PhaseReaction, map[string]any{"reactionSeconds": "1"})
	require.True(t, rig.machine.Timer().Running())
	require.True(t, rig.surface.highlight, "interrupt cards highlighted")

	rig.machine.Press("skip")
	require.Equal(t, 1, rig.dispatcher.count("skipReaction"))

	// Any late expiry must not double-fire.
	rig.machine.Press("skip")
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, 1, rig.dispatcher.count("skipReaction"))
}

func TestReactionAutoSkipAfterExpiry(t *testing.T) {
	rig := newTestRig(1)
	enterPhase(rig, PhaseReaction, nil)
	// The configured fallback is long; drive expiry through the timer
	// directly the way a countdown reaching zero would.
	rig.machine.Timer().Stop()
	rig.machine.Timer().Start(5 * time.Millisecond)

	require.Eventually(t, func() bool {
		return rig.dispatcher.count("skipReaction") == 1
	}, time.Second, time.Millisecond)

	rig.machine.Press("skip")
	require.Equal(t, 1, rig.dispatcher.count("skipReaction"))
}

func TestReactionEligibilityLossStopsTimer(t *testing.T) {
	rig := newTestRig(1)
	enterPhase(rig, PhaseReaction, nil)
	require.True(t, rig.machine.Timer().Running())

	rig.engine.Apply(notif(KindActionsUpdate, map[string]any{
		"args": map[string]any{"active": false},
	}))
	require.False(t, rig.machine.Timer().Running())
	require.Empty(t, rig.surface.actions)
}

func TestReactionRefreshWithoutActiveKeepsIneligibility(t *testing.T) {
	rig := newTestRig(1)
	enterPhase(rig, PhaseReaction, nil)

	rig.engine.Apply(notif(KindActionsUpdate, map[string]any{
		"args": map[string]any{"active": false},
	}))
	require.False(t, rig.machine.Timer().Running())

	// A later update that omits active keeps the seat ineligible; it must
	// not be offered a second skip.
	rig.engine.Apply(notif(KindActionsUpdate, map[string]any{}))
	require.Empty(t, rig.surface.actions)

	rig.machine.Press("skip")
	require.Equal(t, 0, rig.dispatcher.count("skipReaction"))
}

func TestReactionInterruptPlayClaimsOneShot(t *testing.T) {
	rig := newTestRig(1)
	rig.view.ReplaceHand([]domain.Card{
		{ID: 4, Type: domain.CardAction, TypeArg: domain.Encode(1, 0, false)}, // interrupt
		{ID: 5, Type: domain.CardPotato, TypeArg: domain.Encode(0, 1, false)},
	})
	enterPhase(rig, PhaseReaction, nil)

	rig.machine.ToggleCard(5) // not an interrupt; ignored
	require.Empty(t, rig.dispatcher.names())

	rig.machine.ToggleCard(4)
	require.Equal(t, []string{"playCard"}, rig.dispatcher.names())

	rig.machine.Press("skip")
	require.Equal(t, 0, rig.dispatcher.count("skipReaction"), "interrupt play consumed the one-shot flag")
}

func TestReactionLeaveStopsTimerAndClearsHighlight(t *testing.T) {
	rig := newTestRig(1)
	enterPhase(rig, PhaseReaction, nil)
	enterPhase(rig, PhaseActionResolution, nil)

	require.False(t, rig.machine.Timer().Running())
	require.False(t, rig.surface.highlight)
}

func TestTargetSelectionAutoSubmitsAtCap(t *testing.T) {
	rig := newTestRig(1)
	enterPhase(rig, PhaseTargetSelection, map[string]any{
		"selectablePlayers": []any{2, 3, 4},
		"targetCount":       2,
	})

	rig.machine.ToggleSeat(2)
	require.Empty(t, rig.dispatcher.names())
	rig.machine.ToggleSeat(9) // not selectable
	require.Empty(t, rig.dispatcher.names())

	rig.machine.ToggleSeat(4)
	require.Equal(t, []string{"selectTargets"}, rig.dispatcher.names())
}

func TestTargetSelectionRedrawsAfterSubmit(t *testing.T) {
	rig := newTestRig(1)
	enterPhase(rig, PhaseTargetSelection, map[string]any{
		"selectablePlayers": []any{2, 3},
		"targetCount":       1,
	})

	rig.machine.ToggleSeat(2)
	require.Equal(t, []string{"selectTargets"}, rig.dispatcher.names())

	// The submitted selection is gone from the screen; every toggle is
	// back to its unselected label and enabled.
	require.Len(t, rig.surface.actions, 2)
	for _, a := range rig.surface.actions {
		require.NotContains(t, a.Label, "Deselect", "stale toggle survived submit")
		require.True(t, a.Enabled)
	}
}

func TestTargetSelectionExplicitConfirm(t *testing.T) {
	rig := newTestRig(1)
	enterPhase(rig, PhaseTargetSelection, map[string]any{
		"selectablePlayers":       []any{2, 3},
		"targetCount":             2,
		"requiresMultipleTargets": true,
	})

	rig.machine.ToggleSeat(2)
	rig.machine.ToggleSeat(3)
	require.Empty(t, rig.dispatcher.names(), "no auto-submit when confirm is required")
	require.Contains(t, rig.surface.actionIDs(), "confirmTargets")

	// Toggling off removes from the ordered selection and hides confirm.
	rig.machine.ToggleSeat(2)
	require.NotContains(t, rig.surface.actionIDs(), "confirmTargets")

	rig.machine.ToggleSeat(2)
	rig.machine.Press("confirmTargets")
	require.Equal(t, []string{"selectTargets"}, rig.dispatcher.names())
}

func TestDiscardPhaseConfirmGating(t *testing.T) {
	rig := newTestRig(1)
	rig.view.ReplaceHand([]domain.Card{
		{ID: 1, Type: domain.CardPotato}, {ID: 2, Type: domain.CardPotato}, {ID: 3, Type: domain.CardPotato},
	})
	enterPhase(rig, PhaseDiscard, map[string]any{"cardsToDiscard": 2})

	require.False(t, rig.surface.actions[0].Enabled)

	rig.machine.ToggleCard(1)
	rig.machine.Press("confirmDiscard")
	require.Empty(t, rig.dispatcher.names(), "confirm disabled below the required count")

	rig.machine.ToggleCard(2)
	require.True(t, rig.surface.actions[0].Enabled)
	rig.machine.ToggleCard(2) // deselect toggles membership
	require.False(t, rig.surface.actions[0].Enabled)
	rig.machine.ToggleCard(2)

	rig.machine.Press("confirmDiscard")
	require.Equal(t, []string{"discardCards"}, rig.dispatcher.names())
}

func TestCardSelectionByToken(t *testing.T) {
	rig := newTestRig(1)
	enterPhase(rig, PhaseCardSelection, map[string]any{
		"revealedCards": []map[string]any{
			{"token": "tok-a", "card": cardPayloadJSON(8, "potato", domain.Encode(1, 1, false))},
		},
		"cardBacks": []string{"tok-b"},
	})

	require.Equal(t, []string{"choose:tok-a", "choose:tok-b"}, rig.surface.actionIDs())

	rig.machine.Press("choose:tok-b")
	require.Equal(t, []string{"selectCard"}, rig.dispatcher.names())
}

func TestCardSelectionByPosition(t *testing.T) {
	rig := newTestRig(1)
	enterPhase(rig, PhaseCardSelection, map[string]any{"handSize": 3})

	require.Len(t, rig.surface.actions, 3)
	rig.machine.Press("choosePos:1")
	require.Equal(t, []string{"selectCardPosition"}, rig.dispatcher.names())
}

func TestCardNameSelectionNeedsBothChoices(t *testing.T) {
	rig := newTestRig(1)
	enterPhase(rig, PhaseCardNameSelection, map[string]any{
		"cardNames": []map[string]any{
			{"card_type": "potato", "names": []any{0, 1, 2}},
			{"card_type": "action", "names": []any{3, 4}},
		},
	})

	rig.machine.Press("confirmName")
	require.Empty(t, rig.dispatcher.names())

	rig.machine.PickName("potato", -1)
	require.False(t, rig.surface.actions[0].Enabled)

	rig.machine.PickName("potato", 1)
	require.True(t, rig.surface.actions[0].Enabled)

	// Switching type clears the partial name choice.
	rig.machine.PickName("action", -1)
	require.False(t, rig.surface.actions[0].Enabled)

	rig.machine.PickName("action", 4)
	rig.machine.Press("confirmName")
	require.Equal(t, []string{"selectCardName"}, rig.dispatcher.names())
}

func TestUnknownPhaseHasNoHandler(t *testing.T) {
	rig := newTestRig(1)
	enterPhase(rig, Phase("somebodyElsesTurn"), nil)

	require.Empty(t, rig.surface.actions)
	// Interactions with no handler are silently absent, never a panic.
	rig.machine.ToggleCard(1)
	rig.machine.ToggleSeat(2)
	rig.machine.Press("play")
	require.Empty(t, rig.dispatcher.names())
}
