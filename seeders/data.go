package seeders

// Static demo data mirroring the original dashboard's sample fixtures.

var teamsData = []string{
	"Electrical", "Mechanical", "Plumbing", "HVAC", "General Maintenance",
}

type technicianSeed struct {
	Username  string
	FirstName string
	LastName  string
	TeamName  string
}

var techniciansData = []technicianSeed{
	{Username: "tech_elec", FirstName: "John", LastName: "Spark", TeamName: "Electrical"},
	{Username: "tech_mech", FirstName: "Mike", LastName: "Gear", TeamName: "Mechanical"},
	{Username: "tech_hvac", FirstName: "Sarah", LastName: "Cool", TeamName: "HVAC"},
	{Username: "tech_plumb", FirstName: "Pete", LastName: "Pipe", TeamName: "Plumbing"},
	{Username: "tech_gen", FirstName: "Gina", LastName: "Fix", TeamName: "General Maintenance"},
}

type equipmentSeed struct {
	Name       string
	Serial     string
	Location   string
	Department string
	TeamName   string
}

var equipmentData = []equipmentSeed{
	{Name: "Generator A1", Serial: "SN-10001", Location: "Building A", Department: "Production", TeamName: "Electrical"},
	{Name: "Conveyor Belt", Serial: "SN-10002", Location: "Building B", Department: "Production", TeamName: "Mechanical"},
	{Name: "AC Unit 5", Serial: "SN-10003", Location: "Building C", Department: "Production", TeamName: "HVAC"},
	{Name: "Lathe Machine", Serial: "SN-10004", Location: "Building B", Department: "Production", TeamName: "Mechanical"},
	{Name: "Main Switchboard", Serial: "SN-10005", Location: "Building A", Department: "Production", TeamName: "Electrical"},
}

type requestSeed struct {
	Subject       string
	RequestType   string
	EquipmentName string
	TeamName      string
	Technician    string // username, empty for unassigned
	Status        string
	DueInDays     int // relative to today, negative means overdue
}

var requestsData = []requestSeed{
	{Subject: "Generator fails to start", RequestType: "Corrective", EquipmentName: "Generator A1", TeamName: "Electrical", Technician: "tech_elec", Status: "In Progress", DueInDays: 2},
	{Subject: "Quarterly belt inspection", RequestType: "Preventive", EquipmentName: "Conveyor Belt", TeamName: "Mechanical", Technician: "tech_mech", Status: "New", DueInDays: 14},
	{Subject: "AC unit leaking refrigerant", RequestType: "Corrective", EquipmentName: "AC Unit 5", TeamName: "HVAC", Technician: "tech_hvac", Status: "New", DueInDays: -3},
	{Subject: "Lathe spindle calibration", RequestType: "Preventive", EquipmentName: "Lathe Machine", TeamName: "Mechanical", Status: "New", DueInDays: 30},
	{Subject: "Switchboard breaker replacement", RequestType: "Corrective", EquipmentName: "Main Switchboard", TeamName: "Electrical", Technician: "tech_elec", Status: "Repaired", DueInDays: -10},
}
