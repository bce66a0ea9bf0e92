package mcpserver

// ProfileFormatContract describes the canonical YAML profile format that
// LLM consumers should follow when creating profiles.
const ProfileFormatContract = `# Jyotish Profile Format Contract

Every birth profile stored in the Jyotish vault MUST follow this structure.

## Structure

` + "```" + `yaml
name: Human-readable name           # REQUIRED – used in search and listings
dob: "1990-05-15"                   # REQUIRED – date of birth, YYYY-MM-DD, quoted
tob: "12:30"                        # REQUIRED – time of birth, HH:MM 24h, quoted
lat: 28.6139                        # REQUIRED – latitude, decimal degrees [-90, 90]
lng: 77.2090                        # REQUIRED – longitude, decimal degrees [-180, 180]
tz: Asia/Kolkata                    # OPTIONAL – IANA timezone name, presentation only
tags:                               # OPTIONAL – YAML list; used for filtering
  - family
  - client
notes: Free-form remarks.           # OPTIONAL – plain text
` + "```" + `

## Rules

1. **dob and tob must be quoted strings** in the exact layouts above; a bare
   YAML date or time will be rejected.
2. **Coordinates are decimal degrees.** North and east are positive.
3. **File paths** end with ` + "`" + `.yaml` + "`" + ` and use forward slashes.
4. **Tags** are lowercase, kebab-case (e.g. ` + "`" + `family` + "`" + `, ` + "`" + `client-2026` + "`" + `).
5. **Encoding** is UTF-8 with a trailing newline.
6. The ` + "`" + `tz` + "`" + ` field never changes computed positions; the wall time in
   ` + "`" + `dob` + "`" + `/` + "`" + `tob` + "`" + ` is what the engine hashes.

## Example

` + "```" + `yaml
name: Asha Sharma
dob: "1990-05-15"
tob: "12:30"
lat: 28.6139
lng: 77.2090
tz: Asia/Kolkata
tags:
  - family
notes: Chart requested for annual reading.
` + "```" + `
`
