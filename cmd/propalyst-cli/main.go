package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"clementus360/propalyst/api"
	"clementus360/propalyst/config"
	"clementus360/propalyst/pagination"
	"clementus360/propalyst/types"

	"github.com/google/uuid"
)

const areaPageSize = 3

var (
	client    *api.Client
	sessionID string
	// pendingField names the form field the backend is currently asking for,
	// taken from the last component it attached.
	pendingField string
	reader       = bufio.NewReader(os.Stdin)
)

func main() {
	config.LoadEnv()
	config.InitLogger()
	settings := config.LoadSettings()

	client = api.NewClient(settings.APIBaseURL)
	sessionID = uuid.NewString()

	fmt.Println("Welcome to the Propalyst property assistant")
	fmt.Println("Commands: /summary  /areas  /new  /exit")

	// Opening turn: no user input yet, the backend speaks first.
	sendTurn(nil, "")

	for {
		input := prompt("You: ")
		switch {
		case input == "":
			continue
		case input == "/exit":
			fmt.Println("Goodbye!")
			return
		case input == "/new":
			sessionID = uuid.NewString()
			fmt.Println("Started a new session.")
			sendTurn(nil, "")
		case input == "/summary":
			showSummary()
		case input == "/areas":
			browseAreas()
		default:
			sendTurn(&input, pendingField)
		}
	}
}

func prompt(label string) string {
	fmt.Print(label)
	input, err := reader.ReadString('\n')
	if err != nil {
		os.Exit(0)
	}
	return strings.TrimSpace(input)
}

func sendTurn(userInput *string, field string) {
	resp, err := client.SendChat(types.ChatRequest{
		SessionID: sessionID,
		UserInput: userInput,
		Field:     field,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	sessionID = resp.SessionID
	fmt.Printf("Assistant: %s\n", resp.Message)

	pendingField = ""
	if resp.Component != nil {
		fmt.Printf("  [%s component attached]\n", resp.Component.Type)
		if f, ok := resp.Component.Props["field"].(string); ok {
			pendingField = f
		}
	}
	if resp.Completed {
		fmt.Println("  (search complete - try /summary or /areas)")
	}
}

func showSummary() {
	resp, err := client.FetchSummary(types.SummaryRequest{SessionID: sessionID})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("--- Summary ---")
	fmt.Println(resp.Summary)
}

// browseAreas pages through the recommended areas. The window lives here; the
// pagination controller only derives the flags and guards the callbacks.
func browseAreas() {
	resp, err := client.FetchAreas(types.AreasRequest{SessionID: sessionID})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(resp.Areas) == 0 {
		fmt.Println("No area recommendations yet. Keep chatting!")
		return
	}

	window := pagination.Window{
		StartIndex: 0,
		EndIndex:   areaPageSize,
		TotalCount: len(resp.Areas),
	}

	for {
		printPage(resp.Areas, window)

		controller := pagination.Controller{
			Window: window,
			OnPrevious: func() {
				window.StartIndex -= areaPageSize
				window.EndIndex -= areaPageSize
				if window.StartIndex < 0 {
					window.StartIndex = 0
					window.EndIndex = areaPageSize
				}
			},
			OnNext: func() {
				window.StartIndex += areaPageSize
				window.EndIndex += areaPageSize
			},
		}

		choice := prompt("[n]ext, [p]revious, [q]uit: ")
		switch choice {
		case "n":
			controller.Next()
		case "p":
			controller.Previous()
		case "q":
			return
		}
	}
}

func printPage(areas []types.Area, window pagination.Window) {
	fmt.Printf("\n%s\n", window.DisplayRange())
	for i := window.StartIndex; i < window.DisplayEnd(); i++ {
		a := areas[i]
		fmt.Printf("- %s (child-friendly %.1f, %d schools nearby)\n", a.AreaName, a.ChildFriendlyScore, a.SchoolsNearby)
		fmt.Printf("  commute %s, budget %s\n", a.AverageCommute, a.BudgetRange)
		if len(a.Highlights) > 0 {
			fmt.Printf("  highlights: %s\n", strings.Join(a.Highlights, ", "))
		}
	}
}
