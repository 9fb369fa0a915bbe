// Package showcase contains the fixed reference catalogues of the
// Architectural Showcase program: the manufacturer/supplier category list and
// the architect/consultant roles offered on the submission form.
//
// These lists are reference data for clients. The submission store does NOT
// validate supplier-map keys against them; any string key an entrant types is
// accepted and persisted verbatim.
package showcase

// =============================================================================
// Manufacturer & supplier categories (submission form, section 2.0).
// One supplier name may be entered per category.
// =============================================================================

// ManufacturerCategories lists every category in form order.
var ManufacturerCategories = []string{
	"Building Systems - Pre-Engineered Structures",
	"Building Systems - Skylights",
	"Fitness Center - Assessment & Monitoring Equipment",
	"Fitness Center - Cardiovascular Equipment",
	"Fitness Center - Climbing Walls",
	"Fitness Center - Entertainment Systems",
	"Fitness Center - Flooring, Aerobics",
	"Fitness Center - Flooring, Fitness Center",
	"Fitness Center - Free-Weight Equipment",
	"Fitness Center - Strength Equipment",
	"Gymnasium/Field House/Arena - Arena Seating",
	"Gymnasium/Field House/Arena - Basketball Backboards/Supports",
	"Gymnasium/Field House/Arena - Bleachers/Grandstands",
	"Gymnasium/Field House/Arena - Divider Curtains",
	"Gymnasium/Field House/Arena - Floor Covers",
	"Gymnasium/Field House/Arena - Folding Chairs",
	"Gymnasium/Field House/Arena - Gymnastics Equipment",
	"Gymnasium/Field House/Arena - Lighting",
	"Gymnasium/Field House/Arena - Scoreboards/Timing Systems",
	"Gymnasium/Field House/Arena - Scorers Tables",
	"Gymnasium/Field House/Arena - Sound Systems",
	"Gymnasium/Field House/Arena - Tennis Court Nets/Posts",
	"Gymnasium/Field House/Arena - Track & Field Equipment",
	"Gymnasium/Field House/Arena - Volleyball Nets and Standards",
	"Gymnasium/Field House/Arena - Wall Padding",
	"Ice Rinks - Bleachers/Grandstands",
	"Ice Rinks - Dashers",
	"Ice Rinks - Refrigeration Units",
	"Indoor Soccer/Inline Rinks - Dashers",
	"Indoor Sports Surfaces - Basketball",
	"Indoor Sports Surfaces - Multipurpose",
	"Indoor Sports Surfaces - Racquetball/Squash Courts",
	"Indoor Sports Surfaces - Tennis",
	"Indoor Sports Surfaces - Track",
	"Indoor Sports Surfaces - Volleyball",
	"Laundry - Dryers",
	"Laundry - Washers",
	"Locker/Shower - Flooring",
	"Locker/Shower - Lockers",
	"Locker/Shower - Saunas/Whirlpools",
	"Locker/Shower - Shower/Toilet Partitions",
	"Locker/Shower - Swimsuit Extractors",
	"Outdoor Facilities/Stadiums - Baseball Backstops",
	"Outdoor Facilities/Stadiums - Basketball Backboards/Supports",
	"Outdoor Facilities/Stadiums - Bleachers/Grandstands",
	"Outdoor Facilities/Stadiums - Field Covers",
	"Outdoor Facilities/Stadiums - Football Goal Posts",
	"Outdoor Facilities/Stadiums - Lighting",
	"Outdoor Facilities/Stadiums - Scoreboards",
	"Outdoor Facilities/Stadiums - Soccer Goals",
	"Outdoor Facilities/Stadiums - Sports Surfaces",
	"Outdoor Facilities/Stadiums - Tennis Nets/Posts",
	"Outdoor Facilities/Stadiums - Track & Field Equipment",
	"Outdoor Facilities/Stadiums - Windscreens",
	"Pools - Access Ramps/Stairs",
	"Pools - Bleachers",
	"Pools - Bulkheads",
	"Pools - Chemical Control Systems",
	"Pools - Cleaners/Vacuums",
	"Pools - Covers",
	"Pools - Deck/Basin Surface",
	"Pools - Dehumidifiers",
	"Pools - Diving Boards",
	"Pools - Filtration Systems",
	"Pools - Gutters",
	"Pools - Heaters",
	"Pools - Ladders/Grab Bars",
	"Pools - Lane Markers",
	"Pools - Lighting",
	"Pools - Sanitization Systems",
	"Pools - Scoreboard/Timing Systems",
	"Pools - Starting Blocks",
	"Pools - Water Play Features",
	"Racquetball/Squash Courts - Court Panels/Glass Walls",
	"Training Facilities - Hydrotherapy Tanks",
	"Training Facilities - Taping/Treatment Tables",
}

// =============================================================================
// Architect and consultant roles (submission form, sections 1.0 and 4.0).
// The first three are the positional slots of the architects array.
// =============================================================================

const (
	RoleArchitectOfRecord  = "Architect of Record"
	RoleAssociateArchitect = "Associate Architect"
	RoleDesignArchitect    = "Design Architect"
	RoleAquaticConsultant  = "Aquatic Consultant/Engineer"
	RoleLandscapeArchitect = "Landscape Architect/Consultant"
	RoleProgrammingConsult = "Programming Consultant"
	RoleOther              = "Other"
)

// ArchitectRoles lists every selectable role in form order.
var ArchitectRoles = []string{
	RoleArchitectOfRecord,
	RoleAssociateArchitect,
	RoleDesignArchitect,
	RoleAquaticConsultant,
	RoleLandscapeArchitect,
	RoleProgrammingConsult,
	RoleOther,
}

// ArchitectSlotRoles maps the three positional architect slots of a
// submission to their fixed roles.
var ArchitectSlotRoles = [3]string{
	RoleArchitectOfRecord,
	RoleAssociateArchitect,
	RoleDesignArchitect,
}
