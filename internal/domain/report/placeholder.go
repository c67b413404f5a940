package report

// Placeholder is the template shown to scouts. Parsing it yields an
// "Unknown Player" with every average unavailable.
const Placeholder = `#### Player Name: [Enter Player Name Here]

###### Offense:
Shooting: [Numeric Value e.g. 7.5]
Finishing: [Numeric Value]
Shot Creation: [Numeric Value]
Passing: [Numeric Value]
Dribbling: [Numeric Value]

###### Defense:
Perimeter: [Numeric Value]
Interior: [Numeric Value]
Playmaking: [Numeric Value]

###### Physicals:
Athleticism: [Numeric Value (Rating 1-10)]
Age: [Numeric Value (Rating 1-10, not raw age)]
Height: [Numeric Value (Rating 1-10, not raw height)]
Wingspan: [Numeric Value (Rating 1-10, not raw wingspan)]

###### Summary:
NBA Ready: [Numeric Value]
Potential Min: [Numeric Value]
Potential Mid: [Numeric Value]
Potential Max: [Numeric Value]
`
