package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/cardfield/internal/game"
)

// activeSession is the singleton match session (one per stdio process).
var activeSession *Session

// balance holds the match parameters, set by main before serving.
var balance = game.DefaultBalance()

// SetBalance overrides the match parameters used for new sessions.
func SetBalance(b game.Balance) {
	balance = b
}

// RegisterTools adds all match tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startGameTool(), handleStartGame)
	s.AddTool(playCardTool(), handlePlayCard)
	s.AddTool(defendTool(), handleDefend)
	s.AddTool(confirmPurchaseTool(), handleConfirmPurchase)
	s.AddTool(confirmSaleTool(), handleConfirmSale)
	s.AddTool(endTurnTool(), handleEndTurn)
	s.AddTool(getStateTool(), handleGetState)
}

// --- Tool definitions ---

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new card battle against the built-in opponent. "+
			"Returns the opening state: your hand, HP, mana and gold. "+
			"Card effects resolve when played; weapons open an attack the defender may block."),
		mcp.WithBoolean("go_first", mcp.Description("true to take the first turn (default true)")),
	)
}

func playCardTool() mcp.Tool {
	return mcp.NewTool("play_card",
		mcp.WithDescription("Play a card from your hand by its instance id during your main phase. "+
			"A weapon waits for the opponent's defense before damage lands; "+
			"Shopping Spree and Hard Sell open an offer you settle with confirm_purchase or confirm_sale."),
		mcp.WithString("card", mcp.Required(), mcp.Description("Instance id of the hand card to play")),
	)
}

func defendTool() mcp.Tool {
	return mcp.NewTool("defend",
		mcp.WithDescription("Answer the opponent's pending attack. Commit an armor card from your hand "+
			"by instance id, or pass an empty string to decline (equipped armor still blocks automatically)."),
		mcp.WithString("card", mcp.Description("Instance id of the armor card to block with, or empty to decline")),
	)
}

func confirmPurchaseTool() mcp.Tool {
	return mcp.NewTool("confirm_purchase",
		mcp.WithDescription("Settle your pending purchase offer: accept to pay the listed price for the "+
			"offered card, or decline to walk away."),
		mcp.WithBoolean("accept", mcp.Required(), mcp.Description("true to buy, false to decline")),
	)
}

func confirmSaleTool() mcp.Tool {
	return mcp.NewTool("confirm_sale",
		mcp.WithDescription("Settle your pending sale: name the hand card to force onto the opponent "+
			"for its market price, or pass an empty string to cancel."),
		mcp.WithString("card", mcp.Description("Instance id of the hand card to sell, or empty to cancel")),
	)
}

func endTurnTool() mcp.Tool {
	return mcp.NewTool("end_turn",
		mcp.WithDescription("End your turn. Your status effects tick, then the opponent takes its turn; "+
			"the response includes everything it did."),
	)
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Get the current match state and any events since the last call. Read-only."),
	)
}

// --- Tool handlers ---

func handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession != nil && !activeSession.match.State.Over {
		return mcp.NewToolResultError("A match is already running. Finish it or query it with get_state."), nil
	}

	goFirst := request.GetBool("go_first", true)
	sess, err := NewSession(balance, goFirst)
	if err != nil {
		return mcp.NewToolResultErrorf("start_game: %v", err), nil
	}
	activeSession = sess

	return mcp.NewToolResultText(sess.respond("match started")), nil
}

func handlePlayCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No match is running. Use start_game first."), nil
	}

	card := request.GetString("card", "")
	if card == "" {
		return mcp.NewToolResultError("card is required: pass the instance id from your hand."), nil
	}

	if _, err := sess.match.PlayCard(sess.player, card); err != nil {
		return mcp.NewToolResultErrorf("play_card: %v", err), nil
	}
	if err := sess.runBot(); err != nil {
		return mcp.NewToolResultErrorf("opponent turn: %v", err), nil
	}
	return mcp.NewToolResultText(sess.respond("card played")), nil
}

func handleDefend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No match is running. Use start_game first."), nil
	}

	card := request.GetString("card", "")
	if _, err := sess.match.ResolveAttack(card); err != nil {
		return mcp.NewToolResultErrorf("defend: %v", err), nil
	}
	// The attack was the opponent's; close out its turn and let it continue.
	m := sess.match
	if !m.State.Over && m.State.Active != sess.player {
		if err := m.EndTurn(); err != nil {
			return mcp.NewToolResultErrorf("defend: %v", err), nil
		}
		if err := sess.runBot(); err != nil {
			return mcp.NewToolResultErrorf("opponent turn: %v", err), nil
		}
	}
	return mcp.NewToolResultText(sess.respond("attack resolved")), nil
}

func handleConfirmPurchase(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No match is running. Use start_game first."), nil
	}

	accept := request.GetBool("accept", false)
	if _, err := sess.match.ConfirmPurchase(accept); err != nil {
		return mcp.NewToolResultErrorf("confirm_purchase: %v", err), nil
	}
	return mcp.NewToolResultText(sess.respond("purchase settled")), nil
}

func handleConfirmSale(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No match is running. Use start_game first."), nil
	}

	card := request.GetString("card", "")
	if _, err := sess.match.ConfirmSale(card); err != nil {
		return mcp.NewToolResultErrorf("confirm_sale: %v", err), nil
	}
	return mcp.NewToolResultText(sess.respond("sale settled")), nil
}

func handleEndTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No match is running. Use start_game first."), nil
	}

	if err := sess.match.EndTurn(); err != nil {
		return mcp.NewToolResultErrorf("end_turn: %v", err), nil
	}
	if err := sess.runBot(); err != nil {
		return mcp.NewToolResultErrorf("opponent turn: %v", err), nil
	}
	return mcp.NewToolResultText(sess.respond("turn ended")), nil
}

func handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No match is running. Use start_game first."), nil
	}
	return mcp.NewToolResultText(sess.respond("")), nil
}
