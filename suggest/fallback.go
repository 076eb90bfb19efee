package suggest

// offlineSuggestions is served when no provider credential is configured.
var offlineSuggestions = [MaxSuggestions]string{
	"Immediately seek shelter in a designated safe zone.",
	"Keep an emergency kit ready with water, non-perishable food, and first-aid supplies.",
	"Monitor local news and weather reports for real-time updates.",
	"Ensure all family members are accounted for and have a communication plan.",
	"Avoid using elevators and stay away from windows or glass structures.",
	"Follow all evacuation orders issued by local authorities without delay.",
}

// degradedSuggestions is served when the provider call fails.
var degradedSuggestions = [MaxSuggestions]string{
	"Enable push notifications for local emergency alerts.",
	"Prepare a 'Go Bag' with essential documents and medicines.",
	"Identify the nearest emergency exit and shelter locations.",
	"establish a meeting point for family members in case of separation.",
	"Keep portable chargers and batteries for communication devices.",
	"Follow official government channels for the latest safety status.",
}

// OfflineSuggestions returns a copy of the no-credential fallback set.
func OfflineSuggestions() []string {
	out := make([]string, len(offlineSuggestions))
	copy(out, offlineSuggestions[:])
	return out
}

// DegradedSuggestions returns a copy of the provider-failure fallback set.
func DegradedSuggestions() []string {
	out := make([]string, len(degradedSuggestions))
	copy(out, degradedSuggestions[:])
	return out
}
