package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/peterkuimelis/cardfield/internal/game"
	"github.com/peterkuimelis/cardfield/internal/log"
)

func main() {
	balanceFile := flag.String("balance", "", "path to a balance YAML file (optional)")
	name := flag.String("name", "You", "player name")
	seed := flag.Int64("seed", 0, "RNG seed (0 for random)")
	flag.Parse()

	balance := game.DefaultBalance()
	if *balanceFile != "" {
		b, err := game.LoadBalance(*balanceFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		balance = b
	}

	logger := log.NewTextLogger(os.Stdout)
	m := game.NewMatch(game.MatchConfig{
		Balance:     balance,
		Logger:      logger,
		Seed:        *seed,
		Names:       [2]string{*name, "CPU"},
		Scripted:    [2]bool{false, true},
		RandomFirst: true,
	})

	if err := run(m, game.Side(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(m *game.Match, human game.Side) error {
	in := bufio.NewScanner(os.Stdin)
	st := m.State

	if err := runCPU(m, human); err != nil {
		return err
	}

	for !st.Over {
		prompt(m, human)
		if !in.Scan() {
			return in.Err()
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		var err error
		switch cmd {
		case "play", "p":
			err = playByIndex(m, human, args)
		case "defend", "d":
			err = defendByIndex(m, human, args)
		case "yes", "y":
			_, err = m.ConfirmPurchase(true)
		case "no", "n":
			_, err = m.ConfirmPurchase(false)
		case "sell":
			err = sellByIndex(m, human, args)
		case "cancel":
			_, err = m.ConfirmSale("")
		case "end", "e":
			err = m.EndTurn()
			if err == nil {
				err = runCPU(m, human)
			}
		case "hand", "h":
			printHand(m, human)
			continue
		case "state", "s":
			printState(m, human)
			continue
		case "help", "?":
			printHelp()
			continue
		case "quit", "q":
			return nil
		default:
			fmt.Printf("unknown command %q (try 'help')\n", cmd)
			continue
		}
		if err != nil {
			fmt.Printf("! %v\n", err)
		}
	}

	fmt.Println()
	fmt.Println(st.Result)
	return nil
}

// runCPU plays scripted turns until it is the human's move again.
func runCPU(m *game.Match, human game.Side) error {
	st := m.State
	for !st.Over && st.Active != human && st.Phase == game.PhaseMain {
		out, err := m.AutoTurn()
		if err != nil {
			return err
		}
		if out.NeedDefense {
			return nil
		}
	}
	return nil
}

func playByIndex(m *game.Match, human game.Side, args []string) error {
	ci, err := handCard(m, human, args)
	if err != nil {
		return err
	}
	out, err := m.PlayCard(human, ci.ID)
	if err != nil {
		return err
	}
	fmt.Println(out.Message)
	return nil
}

func defendByIndex(m *game.Match, human game.Side, args []string) error {
	id := ""
	if len(args) > 0 && args[0] != "pass" {
		ci, err := handCard(m, human, args)
		if err != nil {
			return err
		}
		id = ci.ID
	}
	out, err := m.ResolveAttack(id)
	if err != nil {
		return err
	}
	fmt.Println(out.Message)
	// The attack was the CPU's; hand the turn back and let it continue.
	st := m.State
	if !st.Over && st.Active != human {
		if err := m.EndTurn(); err != nil {
			return err
		}
		return runCPU(m, human)
	}
	return nil
}

func sellByIndex(m *game.Match, human game.Side, args []string) error {
	ci, err := handCard(m, human, args)
	if err != nil {
		return err
	}
	out, err := m.ConfirmSale(ci.ID)
	if err != nil {
		return err
	}
	fmt.Println(out.Message)
	return nil
}

// handCard resolves a 1-based hand index argument to the card instance.
func handCard(m *game.Match, human game.Side, args []string) (*game.CardInstance, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("which card? give a hand number")
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("bad hand number %q", args[0])
	}
	hand := m.State.Combatant(human).Hand
	if idx < 1 || idx > len(hand) {
		return nil, fmt.Errorf("hand number out of range (1-%d)", len(hand))
	}
	return hand[idx-1], nil
}

func prompt(m *game.Match, human game.Side) {
	st := m.State
	you := st.Combatant(human)
	foe := st.Combatant(human.Other())

	fmt.Println()
	fmt.Printf("%s: %d HP, %d MP, %d gold | %s: %d HP, hand %d\n",
		you.Name, you.HP, you.Mana, you.Gold, foe.Name, foe.HP, len(foe.Hand))

	switch p := st.Pending.(type) {
	case *game.PendingAttack:
		fmt.Printf("Incoming: %s for %d damage. 'defend N' or 'defend pass'\n",
			p.Card.Card.Name, p.Damage)
	case *game.PendingPurchase:
		fmt.Printf("Offer: %s for %d gold. 'yes' or 'no'\n", p.Card.Card.Name, p.Price)
	case *game.PendingSale:
		fmt.Printf("Pick a card to sell: 'sell N' or 'cancel'\n")
	default:
		printHand(m, human)
	}
	fmt.Print("> ")
}

func printHand(m *game.Match, human game.Side) {
	for i, ci := range m.State.Combatant(human).Hand {
		c := ci.Card
		var stats []string
		if c.Attack > 0 {
			stats = append(stats, fmt.Sprintf("atk %d", c.Attack))
		}
		if c.Defense > 0 {
			stats = append(stats, fmt.Sprintf("def %d", c.Defense))
		}
		if c.Heal > 0 {
			stats = append(stats, fmt.Sprintf("heal %d", c.Heal))
		}
		if c.ManaCost > 0 {
			stats = append(stats, fmt.Sprintf("%d mp", c.ManaCost))
		}
		detail := ""
		if len(stats) > 0 {
			detail = " (" + strings.Join(stats, ", ") + ")"
		}
		fmt.Printf("  %d. [%s] %s%s\n", i+1, c.Type, c.Name, detail)
	}
}

func printState(m *game.Match, human game.Side) {
	st := m.State
	fmt.Printf("Turn %d, %s phase. Deck %d, discard %d.\n",
		st.Turn, st.Phase, len(st.Deck), len(st.Discard))
	for s := game.Side(0); s < 2; s++ {
		c := st.Combatant(s)
		armor := "none"
		if c.Armor != nil {
			armor = c.Armor.Card.Name
		}
		fmt.Printf("  %s: %d/%d HP, %d MP, %d gold, armor %s\n",
			c.Name, c.HP, c.MaxHP, c.Mana, c.Gold, armor)
		for _, eff := range c.Statuses {
			fmt.Printf("    %s: %d damage, %d turns left\n", eff.Kind, eff.Damage, eff.Turns)
		}
	}
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  play N        play hand card N")
	fmt.Println("  defend N      block the incoming attack with hand card N")
	fmt.Println("  defend pass   take the hit (equipped armor still blocks)")
	fmt.Println("  yes / no      settle a purchase offer")
	fmt.Println("  sell N        sell hand card N / cancel to back out")
	fmt.Println("  end           end your turn")
	fmt.Println("  hand, state   show your hand / the full board")
	fmt.Println("  quit          give up")
}
