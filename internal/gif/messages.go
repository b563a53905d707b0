package gif

import "fmt"

// User-visible failure and status text. These are plain chat messages;
// raw errors never reach the user.
const (
	catalogUnavailableMessage = "The GIF service could not be reached. Try again in a moment."
	emptyCatalogMessage       = "No GIFs are available right now. Try again later."
	unknownActionMessage      = "Unknown action."
)

func noResultsMessage(term string) string {
	return fmt.Sprintf("No GIFs found for %q. Try a different search.", term)
}

func pickerHeader(matchCount int, term string) string {
	if matchCount > maxPickerItems {
		return fmt.Sprintf("Found lots of GIFs for %q, showing %d random picks. Try a more specific search to narrow it down.", term, maxPickerItems)
	}
	if matchCount == 1 {
		return fmt.Sprintf("Found 1 GIF for %q:", term)
	}
	return fmt.Sprintf("Found %d GIFs for %q:", matchCount, term)
}

func confirmationMessage(path string) string {
	return fmt.Sprintf("Posting %s!", path)
}
