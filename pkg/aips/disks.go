package aips

// MaxDisks is the largest disk number AIPS supports.
const MaxDisks = 71

// Disk is a data area registered by the device-registration
// procedure: a one-based disk number and the directory backing it.
type Disk struct {
	Number  int
	Dirname string
}

// Area returns the environment variable naming this disk's data
// area, e.g. "DA01" for disk 1.
func (d Disk) Area() string {
	return AreaName(d.Number)
}

// AreaName returns the data area variable name for a disk number.
func AreaName(disk int) string {
	return "DA" + Ehex(disk, 2, "0")
}

// Disks enumerates the data areas present in env. Disk numbers are
// one-based and contiguous; enumeration stops at the first gap, the
// same way AIPS itself scans DA01, DA02, ...
func Disks(env Environment) []Disk {
	var disks []Disk
	for n := 1; n <= MaxDisks; n++ {
		dirname, ok := env.Lookup(AreaName(n))
		if !ok {
			break
		}
		disks = append(disks, Disk{Number: n, Dirname: dirname})
	}
	return disks
}
