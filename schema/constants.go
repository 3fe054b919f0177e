package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the report output.
	OutputMode string
)

// Header columns shared by the bike-share CSV exports. Station, duration and
// user columns are spelled exactly as the exports spell them; lookups always
// go through these constants.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// RequiredColumns lists the columns every dataset must carry before the
// pipeline will aggregate it. Gender and Birth Year stay optional; their
// presence is decided per file by the loaded header.
var RequiredColumns = []string{
	ColStartTime,
	ColEndTime,
	ColTripDuration,
	ColStartStation,
	ColEndStation,
	ColUserType,
}

// All report output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// ValidOutputModes lists all valid report output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}
