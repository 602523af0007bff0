package transvox

// Transvoxel lookup tables (Lengyel 2010). regularCellClass maps an 8-bit
// regular cell case code to one of 16 triangulation classes and
// transitionCellClass maps a 9-bit transition case code to its class, with
// bit 7 flagging a triangle winding flip. The cellData entries pack vertex
// and triangle counts in one byte: high nibble vertices, low nibble
// triangles. Vertex data codes are laid out [reuseDir:4|reuseIndex:4|v0:4|v1:4].

type cellData struct {
	geometryCounts uint8
	vertexIndex    []uint8
}

func (c *cellData) vertexCount() int   { return int(c.geometryCounts >> 4) }
func (c *cellData) triangleCount() int { return int(c.geometryCounts & 0x0f) }

var regularCellClass = [256]uint8{
	0x00, 0x01, 0x01, 0x03, 0x01, 0x03, 0x02, 0x04, 0x01, 0x02, 0x03, 0x04, 0x03, 0x04, 0x04, 0x03,
	0x01, 0x03, 0x02, 0x04, 0x02, 0x04, 0x06, 0x0C, 0x02, 0x05, 0x05, 0x0B, 0x05, 0x0A, 0x07, 0x04,
	0x01, 0x02, 0x03, 0x04, 0x02, 0x05, 0x05, 0x0A, 0x02, 0x06, 0x04, 0x0C, 0x05, 0x07, 0x0B, 0x04,
	0x03, 0x04, 0x04, 0x03, 0x05, 0x0B, 0x07, 0x04, 0x05, 0x07, 0x0A, 0x04, 0x08, 0x0E, 0x0E, 0x03,
	0x01, 0x02, 0x02, 0x05, 0x03, 0x04, 0x05, 0x0B, 0x02, 0x06, 0x05, 0x07, 0x04, 0x0C, 0x0A, 0x04,
	0x03, 0x04, 0x05, 0x0A, 0x04, 0x03, 0x07, 0x04, 0x05, 0x07, 0x08, 0x0E, 0x0B, 0x04, 0x0E, 0x03,
	0x02, 0x06, 0x05, 0x07, 0x05, 0x07, 0x08, 0x0E, 0x06, 0x09, 0x07, 0x0F, 0x07, 0x0F, 0x0E, 0x0D,
	0x04, 0x0C, 0x0B, 0x04, 0x0A, 0x04, 0x0E, 0x03, 0x07, 0x0F, 0x0E, 0x0D, 0x0E, 0x0D, 0x02, 0x01,
	0x01, 0x02, 0x02, 0x05, 0x02, 0x05, 0x06, 0x07, 0x03, 0x05, 0x04, 0x0A, 0x04, 0x0B, 0x0C, 0x04,
	0x02, 0x05, 0x06, 0x07, 0x06, 0x07, 0x09, 0x0F, 0x05, 0x08, 0x07, 0x0E, 0x07, 0x0E, 0x0F, 0x0D,
	0x03, 0x05, 0x04, 0x0B, 0x05, 0x08, 0x07, 0x0E, 0x04, 0x07, 0x03, 0x04, 0x0A, 0x0E, 0x04, 0x03,
	0x04, 0x0A, 0x0C, 0x04, 0x07, 0x0E, 0x0F, 0x0D, 0x0B, 0x0E, 0x04, 0x03, 0x0E, 0x02, 0x0D, 0x01,
	0x03, 0x05, 0x05, 0x08, 0x04, 0x0A, 0x07, 0x0E, 0x04, 0x07, 0x0B, 0x0E, 0x03, 0x04, 0x04, 0x03,
	0x04, 0x0B, 0x07, 0x0E, 0x0C, 0x04, 0x0F, 0x0D, 0x0A, 0x0E, 0x0E, 0x02, 0x04, 0x03, 0x0D, 0x01,
	0x04, 0x07, 0x0A, 0x0E, 0x0B, 0x0E, 0x0E, 0x02, 0x0C, 0x0F, 0x04, 0x0D, 0x04, 0x0D, 0x03, 0x01,
	0x03, 0x04, 0x04, 0x03, 0x04, 0x03, 0x0D, 0x01, 0x04, 0x0D, 0x03, 0x01, 0x03, 0x01, 0x01, 0x00,
}

var regularCellData = [16]cellData{
	{0x00, []uint8{}},
	{0x31, []uint8{0, 1, 2}},
	{0x62, []uint8{0, 1, 2, 3, 4, 5}},
	{0x42, []uint8{0, 1, 2, 0, 2, 3}},
	{0x53, []uint8{0, 1, 4, 1, 3, 4, 1, 2, 3}},
	{0x73, []uint8{0, 1, 2, 0, 2, 3, 4, 5, 6}},
	{0x93, []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8}},
	{0x84, []uint8{0, 1, 4, 1, 3, 4, 1, 2, 3, 5, 6, 7}},
	{0x84, []uint8{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}},
	{0xC4, []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
	{0x64, []uint8{0, 4, 5, 0, 1, 4, 1, 3, 4, 1, 2, 3}},
	{0x64, []uint8{0, 5, 4, 0, 4, 1, 1, 4, 3, 1, 3, 2}},
	{0x64, []uint8{0, 4, 5, 0, 3, 4, 0, 1, 3, 1, 2, 3}},
	{0x64, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5}},
	{0x75, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5, 0, 5, 6}},
	{0x95, []uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5, 6, 7, 8}},
}

var regularVertexData = [256][]uint16{
	{},
	{0x6201, 0x3304, 0x5102},
	{0x6201, 0x4113, 0x2315},
	{0x5102, 0x4113, 0x2315, 0x3304},
	{0x5102, 0x1326, 0x4223},
	{0x6201, 0x3304, 0x1326, 0x4223},
	{0x6201, 0x4113, 0x2315, 0x5102, 0x1326, 0x4223},
	{0x3304, 0x1326, 0x4223, 0x4113, 0x2315},
	{0x4113, 0x4223, 0x8337},
	{0x6201, 0x3304, 0x5102, 0x4113, 0x4223, 0x8337},
	{0x6201, 0x4223, 0x8337, 0x2315},
	{0x5102, 0x4223, 0x8337, 0x2315, 0x3304},
	{0x5102, 0x1326, 0x8337, 0x4113},
	{0x6201, 0x3304, 0x1326, 0x8337, 0x4113},
	{0x6201, 0x5102, 0x1326, 0x8337, 0x2315},
	{0x3304, 0x1326, 0x8337, 0x2315},
	{0x3304, 0x2245, 0x1146},
	{0x6201, 0x2245, 0x1146, 0x5102},
	{0x6201, 0x4113, 0x2315, 0x3304, 0x2245, 0x1146},
	{0x5102, 0x4113, 0x2315, 0x2245, 0x1146},
	{0x5102, 0x1326, 0x4223, 0x3304, 0x2245, 0x1146},
	{0x6201, 0x2245, 0x1146, 0x1326, 0x4223},
	{0x6201, 0x4113, 0x2315, 0x5102, 0x1326, 0x4223, 0x3304, 0x2245, 0x1146},
	{0x4113, 0x2315, 0x2245, 0x1146, 0x1326, 0x4223},
	{0x3304, 0x2245, 0x1146, 0x4113, 0x4223, 0x8337},
	{0x6201, 0x2245, 0x1146, 0x5102, 0x4113, 0x4223, 0x8337},
	{0x6201, 0x4223, 0x8337, 0x2315, 0x3304, 0x2245, 0x1146},
	{0x5102, 0x1146, 0x2245, 0x2315, 0x8337, 0x4223},
	{0x5102, 0x1326, 0x8337, 0x4113, 0x3304, 0x2245, 0x1146},
	{0x6201, 0x2245, 0x1146, 0x1326, 0x8337, 0x4113},
	{0x6201, 0x5102, 0x1326, 0x8337, 0x2315, 0x3304, 0x2245, 0x1146},
	{0x2315, 0x2245, 0x1146, 0x1326, 0x8337},
	{0x2315, 0x8157, 0x2245},
	{0x6201, 0x3304, 0x5102, 0x2315, 0x8157, 0x2245},
	{0x6201, 0x4113, 0x8157, 0x2245},
	{0x5102, 0x4113, 0x8157, 0x2245, 0x3304},
	{0x5102, 0x1326, 0x4223, 0x2315, 0x8157, 0x2245},
	{0x6201, 0x3304, 0x1326, 0x4223, 0x2315, 0x8157, 0x2245},
	{0x6201, 0x4113, 0x8157, 0x2245, 0x5102, 0x1326, 0x4223},
	{0x3304, 0x1326, 0x4223, 0x4113, 0x8157, 0x2245},
	{0x4113, 0x4223, 0x8337, 0x2315, 0x8157, 0x2245},
	{0x6201, 0x3304, 0x5102, 0x4113, 0x4223, 0x8337, 0x2315, 0x8157, 0x2245},
	{0x6201, 0x4223, 0x8337, 0x8157, 0x2245},
	{0x5102, 0x4223, 0x8337, 0x8157, 0x2245, 0x3304},
	{0x5102, 0x1326, 0x8337, 0x4113, 0x2315, 0x8157, 0x2245},
	{0x6201, 0x3304, 0x1326, 0x8337, 0x4113, 0x2315, 0x8157, 0x2245},
	{0x6201, 0x2245, 0x8157, 0x8337, 0x1326, 0x5102},
	{0x3304, 0x1326, 0x8337, 0x8157, 0x2245},
	{0x3304, 0x2315, 0x8157, 0x1146},
	{0x6201, 0x2315, 0x8157, 0x1146, 0x5102},
	{0x6201, 0x4113, 0x8157, 0x1146, 0x3304},
	{0x5102, 0x4113, 0x8157, 0x1146},
	{0x3304, 0x2315, 0x8157, 0x1146, 0x5102, 0x1326, 0x4223},
	{0x6201, 0x4223, 0x1326, 0x1146, 0x8157, 0x2315},
	{0x6201, 0x4113, 0x8157, 0x1146, 0x3304, 0x5102, 0x1326, 0x4223},
	{0x4113, 0x8157, 0x1146, 0x1326, 0x4223},
	{0x3304, 0x2315, 0x8157, 0x1146, 0x4113, 0x4223, 0x8337},
	{0x6201, 0x2315, 0x8157, 0x1146, 0x5102, 0x4113, 0x4223, 0x8337},
	{0x6201, 0x4223, 0x8337, 0x8157, 0x1146, 0x3304},
	{0x5102, 0x4223, 0x8337, 0x8157, 0x1146},
	{0x5102, 0x1326, 0x8337, 0x4113, 0x3304, 0x2315, 0x8157, 0x1146},
	{0x6201, 0x2315, 0x8157, 0x1146, 0x1326, 0x8337, 0x4113},
	{0x6201, 0x5102, 0x1326, 0x8337, 0x8157, 0x1146, 0x3304},
	{0x1326, 0x8337, 0x8157, 0x1146},
	{0x1326, 0x1146, 0x8267},
	{0x6201, 0x3304, 0x5102, 0x1326, 0x1146, 0x8267},
	{0x6201, 0x4113, 0x2315, 0x1326, 0x1146, 0x8267},
	{0x5102, 0x4113, 0x2315, 0x3304, 0x1326, 0x1146, 0x8267},
	{0x5102, 0x1146, 0x8267, 0x4223},
	{0x6201, 0x3304, 0x1146, 0x8267, 0x4223},
	{0x5102, 0x1146, 0x8267, 0x4223, 0x6201, 0x4113, 0x2315},
	{0x3304, 0x2315, 0x4113, 0x4223, 0x8267, 0x1146},
	{0x4113, 0x4223, 0x8337, 0x1326, 0x1146, 0x8267},
	{0x6201, 0x3304, 0x5102, 0x4113, 0x4223, 0x8337, 0x1326, 0x1146, 0x8267},
	{0x6201, 0x4223, 0x8337, 0x2315, 0x1326, 0x1146, 0x8267},
	{0x5102, 0x4223, 0x8337, 0x2315, 0x3304, 0x1326, 0x1146, 0x8267},
	{0x5102, 0x1146, 0x8267, 0x8337, 0x4113},
	{0x6201, 0x3304, 0x1146, 0x8267, 0x8337, 0x4113},
	{0x6201, 0x5102, 0x1146, 0x8267, 0x8337, 0x2315},
	{0x3304, 0x1146, 0x8267, 0x8337, 0x2315},
	{0x3304, 0x2245, 0x8267, 0x1326},
	{0x6201, 0x2245, 0x8267, 0x1326, 0x5102},
	{0x3304, 0x2245, 0x8267, 0x1326, 0x6201, 0x4113, 0x2315},
	{0x5102, 0x4113, 0x2315, 0x2245, 0x8267, 0x1326},
	{0x5102, 0x3304, 0x2245, 0x8267, 0x4223},
	{0x6201, 0x2245, 0x8267, 0x4223},
	{0x5102, 0x3304, 0x2245, 0x8267, 0x4223, 0x6201, 0x4113, 0x2315},
	{0x4113, 0x2315, 0x2245, 0x8267, 0x4223},
	{0x3304, 0x2245, 0x8267, 0x1326, 0x4113, 0x4223, 0x8337},
	{0x6201, 0x2245, 0x8267, 0x1326, 0x5102, 0x4113, 0x4223, 0x8337},
	{0x6201, 0x4223, 0x8337, 0x2315, 0x3304, 0x2245, 0x8267, 0x1326},
	{0x5102, 0x4223, 0x8337, 0x2315, 0x2245, 0x8267, 0x1326},
	{0x5102, 0x4113, 0x8337, 0x8267, 0x2245, 0x3304},
	{0x6201, 0x2245, 0x8267, 0x8337, 0x4113},
	{0x6201, 0x5102, 0x3304, 0x2245, 0x8267, 0x8337, 0x2315},
	{0x2315, 0x2245, 0x8267, 0x8337},
	{0x2315, 0x8157, 0x2245, 0x1326, 0x1146, 0x8267},
	{0x6201, 0x3304, 0x5102, 0x2315, 0x8157, 0x2245, 0x1326, 0x1146, 0x8267},
	{0x6201, 0x4113, 0x8157, 0x2245, 0x1326, 0x1146, 0x8267},
	{0x5102, 0x4113, 0x8157, 0x2245, 0x3304, 0x1326, 0x1146, 0x8267},
	{0x5102, 0x1146, 0x8267, 0x4223, 0x2315, 0x8157, 0x2245},
	{0x6201, 0x3304, 0x1146, 0x8267, 0x4223, 0x2315, 0x8157, 0x2245},
	{0x6201, 0x4113, 0x8157, 0x2245, 0x5102, 0x1146, 0x8267, 0x4223},
	{0x3304, 0x1146, 0x8267, 0x4223, 0x4113, 0x8157, 0x2245},
	{0x4113, 0x4223, 0x8337, 0x2315, 0x8157, 0x2245, 0x1326, 0x1146, 0x8267},
	{0x6201, 0x3304, 0x5102, 0x4113, 0x4223, 0x8337, 0x2315, 0x8157, 0x2245, 0x1326, 0x1146, 0x8267},
	{0x6201, 0x4223, 0x8337, 0x8157, 0x2245, 0x1326, 0x1146, 0x8267},
	{0x5102, 0x4223, 0x8337, 0x8157, 0x2245, 0x3304, 0x1326, 0x1146, 0x8267},
	{0x5102, 0x1146, 0x8267, 0x8337, 0x4113, 0x2315, 0x8157, 0x2245},
	{0x6201, 0x3304, 0x1146, 0x8267, 0x8337, 0x4113, 0x2315, 0x8157, 0x2245},
	{0x6201, 0x5102, 0x1146, 0x8267, 0x8337, 0x8157, 0x2245},
	{0x3304, 0x1146, 0x8267, 0x8337, 0x8157, 0x2245},
	{0x3304, 0x2315, 0x8157, 0x8267, 0x1326},
	{0x6201, 0x2315, 0x8157, 0x8267, 0x1326, 0x5102},
	{0x6201, 0x3304, 0x1326, 0x8267, 0x8157, 0x4113},
	{0x5102, 0x4113, 0x8157, 0x8267, 0x1326},
	{0x5102, 0x3304, 0x2315, 0x8157, 0x8267, 0x4223},
	{0x6201, 0x2315, 0x8157, 0x8267, 0x4223},
	{0x6201, 0x4113, 0x8157, 0x8267, 0x4223, 0x5102, 0x3304},
	{0x4113, 0x8157, 0x8267, 0x4223},
	{0x3304, 0x2315, 0x8157, 0x8267, 0x1326, 0x4113, 0x4223, 0x8337},
	{0x6201, 0x2315, 0x8157, 0x8267, 0x1326, 0x5102, 0x4113, 0x4223, 0x8337},
	{0x6201, 0x4223, 0x8337, 0x8157, 0x8267, 0x1326, 0x3304},
	{0x5102, 0x4223, 0x8337, 0x8157, 0x8267, 0x1326},
	{0x5102, 0x3304, 0x2315, 0x8157, 0x8267, 0x8337, 0x4113},
	{0x6201, 0x2315, 0x8157, 0x8267, 0x8337, 0x4113},
	{0x6201, 0x5102, 0x3304, 0x8337, 0x8157, 0x8267},
	{0x8337, 0x8157, 0x8267},
	{0x8337, 0x8267, 0x8157},
	{0x6201, 0x3304, 0x5102, 0x8337, 0x8267, 0x8157},
	{0x6201, 0x4113, 0x2315, 0x8337, 0x8267, 0x8157},
	{0x5102, 0x4113, 0x2315, 0x3304, 0x8337, 0x8267, 0x8157},
	{0x5102, 0x1326, 0x4223, 0x8337, 0x8267, 0x8157},
	{0x6201, 0x3304, 0x1326, 0x4223, 0x8337, 0x8267, 0x8157},
	{0x6201, 0x4113, 0x2315, 0x5102, 0x1326, 0x4223, 0x8337, 0x8267, 0x8157},
	{0x3304, 0x1326, 0x4223, 0x4113, 0x2315, 0x8337, 0x8267, 0x8157},
	{0x4113, 0x4223, 0x8267, 0x8157},
	{0x4113, 0x4223, 0x8267, 0x8157, 0x6201, 0x3304, 0x5102},
	{0x6201, 0x4223, 0x8267, 0x8157, 0x2315},
	{0x5102, 0x4223, 0x8267, 0x8157, 0x2315, 0x3304},
	{0x5102, 0x1326, 0x8267, 0x8157, 0x4113},
	{0x6201, 0x4113, 0x8157, 0x8267, 0x1326, 0x3304},
	{0x6201, 0x5102, 0x1326, 0x8267, 0x8157, 0x2315},
	{0x3304, 0x1326, 0x8267, 0x8157, 0x2315},
	{0x3304, 0x2245, 0x1146, 0x8337, 0x8267, 0x8157},
	{0x6201, 0x2245, 0x1146, 0x5102, 0x8337, 0x8267, 0x8157},
	{0x6201, 0x4113, 0x2315, 0x3304, 0x2245, 0x1146, 0x8337, 0x8267, 0x8157},
	{0x5102, 0x4113, 0x2315, 0x2245, 0x1146, 0x8337, 0x8267, 0x8157},
	{0x5102, 0x1326, 0x4223, 0x3304, 0x2245, 0x1146, 0x8337, 0x8267, 0x8157},
	{0x6201, 0x2245, 0x1146, 0x1326, 0x4223, 0x8337, 0x8267, 0x8157},
	{0x6201, 0x4113, 0x2315, 0x5102, 0x1326, 0x4223, 0x3304, 0x2245, 0x1146, 0x8337, 0x8267, 0x8157},
	{0x4113, 0x2315, 0x2245, 0x1146, 0x1326, 0x4223, 0x8337, 0x8267, 0x8157},
	{0x4113, 0x4223, 0x8267, 0x8157, 0x3304, 0x2245, 0x1146},
	{0x6201, 0x2245, 0x1146, 0x5102, 0x4113, 0x4223, 0x8267, 0x8157},
	{0x6201, 0x4223, 0x8267, 0x8157, 0x2315, 0x3304, 0x2245, 0x1146},
	{0x5102, 0x4223, 0x8267, 0x8157, 0x2315, 0x2245, 0x1146},
	{0x5102, 0x1326, 0x8267, 0x8157, 0x4113, 0x3304, 0x2245, 0x1146},
	{0x6201, 0x2245, 0x1146, 0x1326, 0x8267, 0x8157, 0x4113},
	{0x6201, 0x5102, 0x1326, 0x8267, 0x8157, 0x2315, 0x3304, 0x2245, 0x1146},
	{0x2315, 0x2245, 0x1146, 0x1326, 0x8267, 0x8157},
	{0x2315, 0x8337, 0x8267, 0x2245},
	{0x2315, 0x8337, 0x8267, 0x2245, 0x6201, 0x3304, 0x5102},
	{0x6201, 0x4113, 0x8337, 0x8267, 0x2245},
	{0x5102, 0x3304, 0x2245, 0x8267, 0x8337, 0x4113},
	{0x2315, 0x8337, 0x8267, 0x2245, 0x5102, 0x1326, 0x4223},
	{0x6201, 0x3304, 0x1326, 0x4223, 0x2315, 0x8337, 0x8267, 0x2245},
	{0x6201, 0x4113, 0x8337, 0x8267, 0x2245, 0x5102, 0x1326, 0x4223},
	{0x3304, 0x1326, 0x4223, 0x4113, 0x8337, 0x8267, 0x2245},
	{0x4113, 0x4223, 0x8267, 0x2245, 0x2315},
	{0x4113, 0x4223, 0x8267, 0x2245, 0x2315, 0x6201, 0x3304, 0x5102},
	{0x6201, 0x4223, 0x8267, 0x2245},
	{0x5102, 0x4223, 0x8267, 0x2245, 0x3304},
	{0x5102, 0x1326, 0x8267, 0x2245, 0x2315, 0x4113},
	{0x6201, 0x3304, 0x1326, 0x8267, 0x2245, 0x2315, 0x4113},
	{0x6201, 0x5102, 0x1326, 0x8267, 0x2245},
	{0x3304, 0x1326, 0x8267, 0x2245},
	{0x3304, 0x2315, 0x8337, 0x8267, 0x1146},
	{0x6201, 0x2315, 0x8337, 0x8267, 0x1146, 0x5102},
	{0x6201, 0x4113, 0x8337, 0x8267, 0x1146, 0x3304},
	{0x5102, 0x4113, 0x8337, 0x8267, 0x1146},
	{0x3304, 0x2315, 0x8337, 0x8267, 0x1146, 0x5102, 0x1326, 0x4223},
	{0x6201, 0x2315, 0x8337, 0x8267, 0x1146, 0x1326, 0x4223},
	{0x6201, 0x4113, 0x8337, 0x8267, 0x1146, 0x3304, 0x5102, 0x1326, 0x4223},
	{0x4113, 0x8337, 0x8267, 0x1146, 0x1326, 0x4223},
	{0x3304, 0x1146, 0x8267, 0x4223, 0x4113, 0x2315},
	{0x6201, 0x2315, 0x4113, 0x4223, 0x8267, 0x1146, 0x5102},
	{0x6201, 0x4223, 0x8267, 0x1146, 0x3304},
	{0x5102, 0x4223, 0x8267, 0x1146},
	{0x5102, 0x1326, 0x8267, 0x1146, 0x3304, 0x2315, 0x4113},
	{0x6201, 0x2315, 0x4113, 0x1326, 0x8267, 0x1146},
	{0x6201, 0x5102, 0x1326, 0x8267, 0x1146, 0x3304},
	{0x1326, 0x8267, 0x1146},
	{0x1326, 0x1146, 0x8157, 0x8337},
	{0x1326, 0x1146, 0x8157, 0x8337, 0x6201, 0x3304, 0x5102},
	{0x1326, 0x1146, 0x8157, 0x8337, 0x6201, 0x4113, 0x2315},
	{0x5102, 0x4113, 0x2315, 0x3304, 0x1326, 0x1146, 0x8157, 0x8337},
	{0x5102, 0x1146, 0x8157, 0x8337, 0x4223},
	{0x6201, 0x3304, 0x1146, 0x8157, 0x8337, 0x4223},
	{0x5102, 0x1146, 0x8157, 0x8337, 0x4223, 0x6201, 0x4113, 0x2315},
	{0x3304, 0x1146, 0x8157, 0x8337, 0x4223, 0x4113, 0x2315},
	{0x4113, 0x4223, 0x1326, 0x1146, 0x8157},
	{0x4113, 0x4223, 0x1326, 0x1146, 0x8157, 0x6201, 0x3304, 0x5102},
	{0x6201, 0x2315, 0x8157, 0x1146, 0x1326, 0x4223},
	{0x5102, 0x4223, 0x1326, 0x1146, 0x8157, 0x2315, 0x3304},
	{0x5102, 0x1146, 0x8157, 0x4113},
	{0x6201, 0x3304, 0x1146, 0x8157, 0x4113},
	{0x6201, 0x5102, 0x1146, 0x8157, 0x2315},
	{0x3304, 0x1146, 0x8157, 0x2315},
	{0x3304, 0x2245, 0x8157, 0x8337, 0x1326},
	{0x6201, 0x5102, 0x1326, 0x8337, 0x8157, 0x2245},
	{0x3304, 0x2245, 0x8157, 0x8337, 0x1326, 0x6201, 0x4113, 0x2315},
	{0x5102, 0x4113, 0x2315, 0x2245, 0x8157, 0x8337, 0x1326},
	{0x5102, 0x3304, 0x2245, 0x8157, 0x8337, 0x4223},
	{0x6201, 0x2245, 0x8157, 0x8337, 0x4223},
	{0x5102, 0x3304, 0x2245, 0x8157, 0x8337, 0x4223, 0x6201, 0x4113, 0x2315},
	{0x4113, 0x2315, 0x2245, 0x8157, 0x8337, 0x4223},
	{0x3304, 0x2245, 0x8157, 0x4113, 0x4223, 0x1326},
	{0x6201, 0x2245, 0x8157, 0x4113, 0x4223, 0x1326, 0x5102},
	{0x6201, 0x4223, 0x1326, 0x3304, 0x2245, 0x8157, 0x2315},
	{0x5102, 0x4223, 0x1326, 0x2315, 0x2245, 0x8157},
	{0x5102, 0x3304, 0x2245, 0x8157, 0x4113},
	{0x6201, 0x2245, 0x8157, 0x4113},
	{0x6201, 0x5102, 0x3304, 0x2245, 0x8157, 0x2315},
	{0x2315, 0x2245, 0x8157},
	{0x2315, 0x8337, 0x1326, 0x1146, 0x2245},
	{0x2315, 0x8337, 0x1326, 0x1146, 0x2245, 0x6201, 0x3304, 0x5102},
	{0x6201, 0x4113, 0x8337, 0x1326, 0x1146, 0x2245},
	{0x5102, 0x4113, 0x8337, 0x1326, 0x1146, 0x2245, 0x3304},
	{0x5102, 0x4223, 0x8337, 0x2315, 0x2245, 0x1146},
	{0x6201, 0x3304, 0x1146, 0x2245, 0x2315, 0x8337, 0x4223},
	{0x6201, 0x4113, 0x8337, 0x4223, 0x5102, 0x1146, 0x2245},
	{0x3304, 0x1146, 0x2245, 0x4113, 0x8337, 0x4223},
	{0x4113, 0x4223, 0x1326, 0x1146, 0x2245, 0x2315},
	{0x4113, 0x4223, 0x1326, 0x1146, 0x2245, 0x2315, 0x6201, 0x3304, 0x5102},
	{0x6201, 0x4223, 0x1326, 0x1146, 0x2245},
	{0x5102, 0x4223, 0x1326, 0x1146, 0x2245, 0x3304},
	{0x5102, 0x1146, 0x2245, 0x2315, 0x4113},
	{0x6201, 0x3304, 0x1146, 0x2245, 0x2315, 0x4113},
	{0x6201, 0x5102, 0x1146, 0x2245},
	{0x3304, 0x1146, 0x2245},
	{0x3304, 0x2315, 0x8337, 0x1326},
	{0x6201, 0x2315, 0x8337, 0x1326, 0x5102},
	{0x6201, 0x4113, 0x8337, 0x1326, 0x3304},
	{0x5102, 0x4113, 0x8337, 0x1326},
	{0x5102, 0x3304, 0x2315, 0x8337, 0x4223},
	{0x6201, 0x2315, 0x8337, 0x4223},
	{0x6201, 0x4113, 0x8337, 0x4223, 0x5102, 0x3304},
	{0x4113, 0x8337, 0x4223},
	{0x3304, 0x2315, 0x4113, 0x4223, 0x1326},
	{0x6201, 0x2315, 0x4113, 0x4223, 0x1326, 0x5102},
	{0x6201, 0x4223, 0x1326, 0x3304},
	{0x5102, 0x4223, 0x1326},
	{0x5102, 0x3304, 0x2315, 0x4113},
	{0x6201, 0x2315, 0x4113},
	{0x6201, 0x5102, 0x3304},
	{},
}

var transitionCellClass = [512]uint8{
	0x00, 0x00, 0x01, 0x02, 0x00, 0x03, 0x02, 0x02, 0x01, 0x04, 0x05, 0x06, 0x02, 0x07, 0x03, 0x03,
	0x00, 0x08, 0x04, 0x09, 0x03, 0x0A, 0x07, 0x07, 0x02, 0x09, 0x06, 0x0B, 0x02, 0x07, 0x03, 0x03,
	0x01, 0x04, 0x05, 0x06, 0x04, 0x0C, 0x06, 0x06, 0x05, 0x0D, 0x0E, 0x0F, 0x06, 0x10, 0x0C, 0x0C,
	0x02, 0x09, 0x06, 0x0B, 0x07, 0x11, 0x0A, 0x0A, 0x03, 0x12, 0x0C, 0x13, 0x03, 0x0A, 0x07, 0x07,
	0x00, 0x03, 0x04, 0x07, 0x08, 0x0A, 0x09, 0x07, 0x04, 0x0C, 0x0D, 0x10, 0x09, 0x11, 0x12, 0x0A,
	0x03, 0x0A, 0x0C, 0x11, 0x0A, 0x0A, 0x11, 0x07, 0x07, 0x11, 0x10, 0x14, 0x07, 0x07, 0x0A, 0x03,
	0x02, 0x07, 0x06, 0x0A, 0x09, 0x11, 0x0B, 0x0A, 0x06, 0x10, 0x0F, 0x15, 0x0B, 0x14, 0x13, 0x11,
	0x02, 0x07, 0x06, 0x0A, 0x07, 0x07, 0x0A, 0x03, 0x03, 0x0A, 0x0C, 0x11, 0x03, 0x03, 0x07, 0x02,
	0x01, 0x02, 0x05, 0x03, 0x04, 0x07, 0x06, 0x03, 0x05, 0x06, 0x0E, 0x0C, 0x06, 0x0A, 0x0C, 0x07,
	0x04, 0x09, 0x0D, 0x12, 0x0C, 0x11, 0x10, 0x0A, 0x06, 0x0B, 0x0F, 0x13, 0x06, 0x0A, 0x0C, 0x07,
	0x05, 0x06, 0x0E, 0x0C, 0x0D, 0x10, 0x0F, 0x0C, 0x0E, 0x0F, 0x16, 0x17, 0x0F, 0x15, 0x17, 0x10,
	0x06, 0x0B, 0x0F, 0x13, 0x10, 0x14, 0x15, 0x11, 0x0C, 0x13, 0x17, 0x18, 0x0C, 0x11, 0x10, 0x0A,
	0x02, 0x02, 0x06, 0x03, 0x09, 0x07, 0x0B, 0x03, 0x06, 0x06, 0x0F, 0x0C, 0x0B, 0x0A, 0x13, 0x07,
	0x07, 0x07, 0x10, 0x0A, 0x11, 0x07, 0x14, 0x03, 0x0A, 0x0A, 0x15, 0x11, 0x0A, 0x03, 0x11, 0x02,
	0x03, 0x03, 0x0C, 0x07, 0x12, 0x0A, 0x13, 0x07, 0x0C, 0x0C, 0x17, 0x10, 0x13, 0x11, 0x18, 0x0A,
	0x03, 0x03, 0x0C, 0x07, 0x0A, 0x03, 0x11, 0x02, 0x07, 0x07, 0x10, 0x0A, 0x07, 0x02, 0x0A, 0x00,
	0x80, 0x8A, 0x82, 0x87, 0x8A, 0x90, 0x87, 0x87, 0x82, 0x91, 0x83, 0x8A, 0x87, 0x8C, 0x83, 0x83,
	0x8A, 0x98, 0x91, 0x93, 0x90, 0x97, 0x8C, 0x8C, 0x87, 0x93, 0x8A, 0x92, 0x87, 0x8C, 0x83, 0x83,
	0x82, 0x91, 0x83, 0x8A, 0x91, 0x95, 0x8A, 0x8A, 0x83, 0x94, 0x87, 0x91, 0x8A, 0x90, 0x87, 0x87,
	0x87, 0x93, 0x8A, 0x8B, 0x8C, 0x8F, 0x86, 0x86, 0x83, 0x8B, 0x87, 0x89, 0x83, 0x86, 0x82, 0x82,
	0x8A, 0x90, 0x91, 0x8C, 0x98, 0x97, 0x93, 0x8C, 0x91, 0x95, 0x94, 0x90, 0x93, 0x8F, 0x8B, 0x86,
	0x90, 0x97, 0x95, 0x8F, 0x97, 0x96, 0x8F, 0x8E, 0x8C, 0x8F, 0x90, 0x8D, 0x8C, 0x8E, 0x86, 0x85,
	0x87, 0x8C, 0x8A, 0x86, 0x93, 0x8F, 0x8B, 0x86, 0x8A, 0x90, 0x91, 0x8C, 0x92, 0x8D, 0x89, 0x84,
	0x87, 0x8C, 0x8A, 0x86, 0x8C, 0x8E, 0x86, 0x85, 0x83, 0x86, 0x87, 0x84, 0x83, 0x85, 0x82, 0x81,
	0x82, 0x87, 0x83, 0x83, 0x91, 0x8C, 0x8A, 0x83, 0x83, 0x8A, 0x87, 0x87, 0x8A, 0x86, 0x87, 0x82,
	0x91, 0x93, 0x94, 0x8B, 0x95, 0x8F, 0x90, 0x86, 0x8A, 0x8B, 0x91, 0x89, 0x8A, 0x86, 0x87, 0x82,
	0x83, 0x8A, 0x87, 0x87, 0x94, 0x90, 0x91, 0x87, 0x87, 0x91, 0x8A, 0x8A, 0x91, 0x8C, 0x8A, 0x83,
	0x8A, 0x92, 0x91, 0x89, 0x90, 0x8D, 0x8C, 0x84, 0x87, 0x89, 0x8A, 0x88, 0x87, 0x84, 0x83, 0x80,
	0x87, 0x87, 0x8A, 0x83, 0x93, 0x8C, 0x92, 0x83, 0x8A, 0x8A, 0x91, 0x87, 0x8B, 0x86, 0x89, 0x82,
	0x8C, 0x8C, 0x90, 0x86, 0x8F, 0x8E, 0x8D, 0x85, 0x86, 0x86, 0x8C, 0x84, 0x86, 0x85, 0x84, 0x81,
	0x83, 0x83, 0x87, 0x82, 0x8B, 0x86, 0x89, 0x82, 0x87, 0x87, 0x8A, 0x83, 0x89, 0x84, 0x88, 0x80,
	0x83, 0x83, 0x87, 0x82, 0x86, 0x85, 0x84, 0x81, 0x82, 0x82, 0x83, 0x80, 0x82, 0x81, 0x80, 0x80,
}

var transitionCellData = [25]cellData{
	{0x42, []uint8{2, 1, 0, 3, 2, 0}},
	{0x31, []uint8{2, 1, 0}},
	{0x53, []uint8{2, 1, 0, 3, 2, 0, 4, 3, 0}},
	{0x64, []uint8{2, 1, 0, 3, 2, 0, 4, 3, 0, 5, 4, 0}},
	{0x73, []uint8{2, 1, 0, 3, 2, 0, 6, 5, 4}},
	{0x62, []uint8{2, 1, 0, 5, 4, 3}},
	{0x84, []uint8{2, 1, 0, 3, 2, 0, 4, 3, 0, 7, 6, 5}},
	{0x75, []uint8{2, 1, 0, 3, 2, 0, 4, 3, 0, 5, 4, 0, 6, 5, 0}},
	{0x84, []uint8{2, 1, 0, 3, 2, 0, 6, 5, 4, 7, 6, 4}},
	{0x95, []uint8{2, 1, 0, 3, 2, 0, 4, 3, 0, 7, 6, 5, 8, 7, 5}},
	{0x86, []uint8{2, 1, 0, 3, 2, 0, 4, 3, 0, 5, 4, 0, 6, 5, 0, 7, 6, 0}},
	{0xA6, []uint8{2, 1, 0, 3, 2, 0, 4, 3, 0, 7, 6, 5, 8, 7, 5, 9, 8, 5}},
	{0x95, []uint8{2, 1, 0, 3, 2, 0, 4, 3, 0, 5, 4, 0, 8, 7, 6}},
	{0xA4, []uint8{2, 1, 0, 3, 2, 0, 6, 5, 4, 9, 8, 7}},
	{0x93, []uint8{2, 1, 0, 5, 4, 3, 8, 7, 6}},
	{0xB5, []uint8{2, 1, 0, 3, 2, 0, 4, 3, 0, 7, 6, 5, 10, 9, 8}},
	{0xA6, []uint8{2, 1, 0, 3, 2, 0, 4, 3, 0, 5, 4, 0, 6, 5, 0, 9, 8, 7}},
	{0x97, []uint8{2, 1, 0, 3, 2, 0, 4, 3, 0, 5, 4, 0, 6, 5, 0, 7, 6, 0, 8, 7, 0}},
	{0xA6, []uint8{2, 1, 0, 3, 2, 0, 4, 3, 0, 5, 4, 0, 8, 7, 6, 9, 8, 6}},
	{0xB7, []uint8{2, 1, 0, 3, 2, 0, 4, 3, 0, 5, 4, 0, 8, 7, 6, 9, 8, 6, 10, 9, 6}},
	{0xA8, []uint8{2, 1, 0, 3, 2, 0, 4, 3, 0, 5, 4, 0, 6, 5, 0, 7, 6, 0, 8, 7, 0, 9, 8, 0}},
	{0xB7, []uint8{2, 1, 0, 3, 2, 0, 4, 3, 0, 5, 4, 0, 6, 5, 0, 7, 6, 0, 10, 9, 8}},
	{0xC4, []uint8{2, 1, 0, 5, 4, 3, 8, 7, 6, 11, 10, 9}},
	{0xC6, []uint8{2, 1, 0, 3, 2, 0, 4, 3, 0, 5, 4, 0, 8, 7, 6, 11, 10, 9}},
	{0xC8, []uint8{2, 1, 0, 3, 2, 0, 4, 3, 0, 5, 4, 0, 8, 7, 6, 9, 8, 6, 10, 9, 6, 11, 10, 6}},
}

var transitionVertexData = [512][]uint16{
	{},
	{0x2701, 0x2A9A, 0x199B, 0x1503},
	{0x2701, 0x4014, 0x2812},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x199B},
	{0x2812, 0x8525, 0x89AC, 0x2A9A},
	{0x2701, 0x2812, 0x8525, 0x89AC, 0x199B, 0x1503},
	{0x2701, 0x4014, 0x8525, 0x89AC, 0x2A9A},
	{0x1503, 0x4014, 0x8525, 0x89AC, 0x199B},
	{0x8525, 0x4045, 0x8658},
	{0x2701, 0x2A9A, 0x199B, 0x1503, 0x8525, 0x4045, 0x8658},
	{0x2701, 0x4014, 0x2812, 0x8525, 0x4045, 0x8658},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x199B, 0x8525, 0x4045, 0x8658},
	{0x2812, 0x4045, 0x8658, 0x89AC, 0x2A9A},
	{0x2701, 0x2812, 0x4045, 0x8658, 0x89AC, 0x199B, 0x1503},
	{0x2701, 0x4014, 0x4045, 0x8658, 0x89AC, 0x2A9A},
	{0x1503, 0x4014, 0x4045, 0x8658, 0x89AC, 0x199B},
	{0x8658, 0x8878, 0x8ABC, 0x89AC},
	{0x2701, 0x2A9A, 0x199B, 0x1503, 0x8658, 0x8878, 0x8ABC, 0x89AC},
	{0x8658, 0x8878, 0x8ABC, 0x89AC, 0x2701, 0x4014, 0x2812},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x199B, 0x8658, 0x8878, 0x8ABC, 0x89AC},
	{0x2812, 0x8525, 0x8658, 0x8878, 0x8ABC, 0x2A9A},
	{0x2701, 0x2812, 0x8525, 0x8658, 0x8878, 0x8ABC, 0x199B, 0x1503},
	{0x2701, 0x4014, 0x8525, 0x8658, 0x8878, 0x8ABC, 0x2A9A},
	{0x1503, 0x4014, 0x8525, 0x8658, 0x8878, 0x8ABC, 0x199B},
	{0x8525, 0x4045, 0x8878, 0x8ABC, 0x89AC},
	{0x8525, 0x4045, 0x8878, 0x8ABC, 0x89AC, 0x2701, 0x2A9A, 0x199B, 0x1503},
	{0x8525, 0x4045, 0x8878, 0x8ABC, 0x89AC, 0x2701, 0x4014, 0x2812},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x199B, 0x8525, 0x4045, 0x8878, 0x8ABC, 0x89AC},
	{0x2812, 0x4045, 0x8878, 0x8ABC, 0x2A9A},
	{0x2701, 0x2812, 0x4045, 0x8878, 0x8ABC, 0x199B, 0x1503},
	{0x2701, 0x4014, 0x4045, 0x8878, 0x8ABC, 0x2A9A},
	{0x1503, 0x4014, 0x4045, 0x8878, 0x8ABC, 0x199B},
	{0x4047, 0x8767, 0x8878},
	{0x2701, 0x2A9A, 0x199B, 0x1503, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x4014, 0x2812, 0x4047, 0x8767, 0x8878},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x199B, 0x4047, 0x8767, 0x8878},
	{0x2812, 0x8525, 0x89AC, 0x2A9A, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x2812, 0x8525, 0x89AC, 0x199B, 0x1503, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x4014, 0x8525, 0x89AC, 0x2A9A, 0x4047, 0x8767, 0x8878},
	{0x1503, 0x4014, 0x8525, 0x89AC, 0x199B, 0x4047, 0x8767, 0x8878},
	{0x8525, 0x4045, 0x8658, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x2A9A, 0x199B, 0x1503, 0x8525, 0x4045, 0x8658, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x4014, 0x2812, 0x8525, 0x4045, 0x8658, 0x4047, 0x8767, 0x8878},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x199B, 0x8525, 0x4045, 0x8658, 0x4047, 0x8767, 0x8878},
	{0x2812, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x2812, 0x4045, 0x8658, 0x89AC, 0x199B, 0x1503, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x4014, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x4047, 0x8767, 0x8878},
	{0x1503, 0x4014, 0x4045, 0x8658, 0x89AC, 0x199B, 0x4047, 0x8767, 0x8878},
	{0x4047, 0x8767, 0x8ABC, 0x89AC, 0x8658},
	{0x4047, 0x8767, 0x8ABC, 0x89AC, 0x8658, 0x2701, 0x2A9A, 0x199B, 0x1503},
	{0x4047, 0x8767, 0x8ABC, 0x89AC, 0x8658, 0x2701, 0x4014, 0x2812},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x199B, 0x4047, 0x8767, 0x8ABC, 0x89AC, 0x8658},
	{0x2812, 0x8525, 0x8658, 0x4047, 0x8767, 0x8ABC, 0x2A9A},
	{0x2701, 0x2812, 0x8525, 0x8658, 0x4047, 0x8767, 0x8ABC, 0x199B, 0x1503},
	{0x2701, 0x4014, 0x8525, 0x8658, 0x4047, 0x8767, 0x8ABC, 0x2A9A},
	{0x1503, 0x4014, 0x8525, 0x8658, 0x4047, 0x8767, 0x8ABC, 0x199B},
	{0x8525, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x89AC},
	{0x8525, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x89AC, 0x2701, 0x2A9A, 0x199B, 0x1503},
	{0x8525, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x89AC, 0x2701, 0x4014, 0x2812},
	{0x8525, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x89AC, 0x1503, 0x4014, 0x2812, 0x2A9A, 0x199B},
	{0x2812, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x2A9A},
	{0x2701, 0x2812, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x199B, 0x1503},
	{0x2701, 0x4014, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x2A9A},
	{0x1503, 0x4014, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x199B},
	{0x1636, 0x199B, 0x8ABC, 0x8767},
	{0x2701, 0x2A9A, 0x8ABC, 0x8767, 0x1636, 0x1503},
	{0x1636, 0x199B, 0x8ABC, 0x8767, 0x2701, 0x4014, 0x2812},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x8ABC, 0x8767, 0x1636},
	{0x2812, 0x8525, 0x89AC, 0x2A9A, 0x1636, 0x199B, 0x8ABC, 0x8767},
	{0x2701, 0x2812, 0x8525, 0x89AC, 0x8ABC, 0x8767, 0x1636, 0x1503},
	{0x2701, 0x4014, 0x8525, 0x89AC, 0x2A9A, 0x1636, 0x199B, 0x8ABC, 0x8767},
	{0x1503, 0x4014, 0x8525, 0x89AC, 0x8ABC, 0x8767, 0x1636},
	{0x1636, 0x199B, 0x8ABC, 0x8767, 0x8525, 0x4045, 0x8658},
	{0x2701, 0x2A9A, 0x8ABC, 0x8767, 0x1636, 0x1503, 0x8525, 0x4045, 0x8658},
	{0x1636, 0x199B, 0x8ABC, 0x8767, 0x2701, 0x4014, 0x2812, 0x8525, 0x4045, 0x8658},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x8ABC, 0x8767, 0x1636, 0x8525, 0x4045, 0x8658},
	{0x2812, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x1636, 0x199B, 0x8ABC, 0x8767},
	{0x2701, 0x2812, 0x4045, 0x8658, 0x89AC, 0x8ABC, 0x8767, 0x1636, 0x1503},
	{0x2701, 0x4014, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x1636, 0x199B, 0x8ABC, 0x8767},
	{0x1503, 0x4014, 0x4045, 0x8658, 0x89AC, 0x8ABC, 0x8767, 0x1636},
	{0x1636, 0x199B, 0x89AC, 0x8658, 0x8878, 0x8767},
	{0x2701, 0x2A9A, 0x89AC, 0x8658, 0x8878, 0x8767, 0x1636, 0x1503},
	{0x1636, 0x199B, 0x89AC, 0x8658, 0x8878, 0x8767, 0x2701, 0x4014, 0x2812},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x89AC, 0x8658, 0x8878, 0x8767, 0x1636},
	{0x2812, 0x8525, 0x8658, 0x8878, 0x8767, 0x1636, 0x199B, 0x2A9A},
	{0x2701, 0x2812, 0x8525, 0x8658, 0x8878, 0x8767, 0x1636, 0x1503},
	{0x2701, 0x4014, 0x8525, 0x8658, 0x8878, 0x8767, 0x1636, 0x199B, 0x2A9A},
	{0x1503, 0x4014, 0x8525, 0x8658, 0x8878, 0x8767, 0x1636},
	{0x8525, 0x4045, 0x8878, 0x8767, 0x1636, 0x199B, 0x89AC},
	{0x2701, 0x2A9A, 0x89AC, 0x8525, 0x4045, 0x8878, 0x8767, 0x1636, 0x1503},
	{0x8525, 0x4045, 0x8878, 0x8767, 0x1636, 0x199B, 0x89AC, 0x2701, 0x4014, 0x2812},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x89AC, 0x8525, 0x4045, 0x8878, 0x8767, 0x1636},
	{0x2812, 0x4045, 0x8878, 0x8767, 0x1636, 0x199B, 0x2A9A},
	{0x2701, 0x2812, 0x4045, 0x8878, 0x8767, 0x1636, 0x1503},
	{0x2701, 0x4014, 0x4045, 0x8878, 0x8767, 0x1636, 0x199B, 0x2A9A},
	{0x1503, 0x4014, 0x4045, 0x8878, 0x8767, 0x1636},
	{0x1636, 0x199B, 0x8ABC, 0x8878, 0x4047},
	{0x2701, 0x2A9A, 0x8ABC, 0x8878, 0x4047, 0x1636, 0x1503},
	{0x1636, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x2701, 0x4014, 0x2812},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x8ABC, 0x8878, 0x4047, 0x1636},
	{0x1636, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x2812, 0x8525, 0x89AC, 0x2A9A},
	{0x2701, 0x2812, 0x8525, 0x89AC, 0x8ABC, 0x8878, 0x4047, 0x1636, 0x1503},
	{0x2701, 0x4014, 0x8525, 0x89AC, 0x2A9A, 0x1636, 0x199B, 0x8ABC, 0x8878, 0x4047},
	{0x1503, 0x4014, 0x8525, 0x89AC, 0x8ABC, 0x8878, 0x4047, 0x1636},
	{0x1636, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x8525, 0x4045, 0x8658},
	{0x2701, 0x2A9A, 0x8ABC, 0x8878, 0x4047, 0x1636, 0x1503, 0x8525, 0x4045, 0x8658},
	{0x1636, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x2701, 0x4014, 0x2812, 0x8525, 0x4045, 0x8658},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x8ABC, 0x8878, 0x4047, 0x1636, 0x8525, 0x4045, 0x8658},
	{0x2812, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x1636, 0x199B, 0x8ABC, 0x8878, 0x4047},
	{0x2701, 0x2812, 0x4045, 0x8658, 0x89AC, 0x8ABC, 0x8878, 0x4047, 0x1636, 0x1503},
	{0x2701, 0x4014, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x1636, 0x199B, 0x8ABC, 0x8878, 0x4047},
	{0x1503, 0x4014, 0x4045, 0x8658, 0x89AC, 0x8ABC, 0x8878, 0x4047, 0x1636},
	{0x1636, 0x199B, 0x89AC, 0x8658, 0x4047},
	{0x2701, 0x2A9A, 0x89AC, 0x8658, 0x4047, 0x1636, 0x1503},
	{0x1636, 0x199B, 0x89AC, 0x8658, 0x4047, 0x2701, 0x4014, 0x2812},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x89AC, 0x8658, 0x4047, 0x1636},
	{0x2812, 0x8525, 0x8658, 0x4047, 0x1636, 0x199B, 0x2A9A},
	{0x2701, 0x2812, 0x8525, 0x8658, 0x4047, 0x1636, 0x1503},
	{0x2701, 0x4014, 0x8525, 0x8658, 0x4047, 0x1636, 0x199B, 0x2A9A},
	{0x1503, 0x4014, 0x8525, 0x8658, 0x4047, 0x1636},
	{0x8525, 0x4045, 0x4047, 0x1636, 0x199B, 0x89AC},
	{0x2701, 0x2A9A, 0x89AC, 0x8525, 0x4045, 0x4047, 0x1636, 0x1503},
	{0x8525, 0x4045, 0x4047, 0x1636, 0x199B, 0x89AC, 0x2701, 0x4014, 0x2812},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x89AC, 0x8525, 0x4045, 0x4047, 0x1636},
	{0x2812, 0x4045, 0x4047, 0x1636, 0x199B, 0x2A9A},
	{0x2701, 0x2812, 0x4045, 0x4047, 0x1636, 0x1503},
	{0x2701, 0x4014, 0x4045, 0x4047, 0x1636, 0x199B, 0x2A9A},
	{0x1503, 0x4014, 0x4045, 0x4047, 0x1636},
	{0x1503, 0x1636, 0x4034},
	{0x2701, 0x2A9A, 0x199B, 0x1636, 0x4034},
	{0x2701, 0x4014, 0x2812, 0x1503, 0x1636, 0x4034},
	{0x2812, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x4014},
	{0x2812, 0x8525, 0x89AC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x2701, 0x2812, 0x8525, 0x89AC, 0x199B, 0x1636, 0x4034},
	{0x2701, 0x4014, 0x8525, 0x89AC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x4014, 0x8525, 0x89AC, 0x199B, 0x1636, 0x4034},
	{0x1503, 0x1636, 0x4034, 0x8525, 0x4045, 0x8658},
	{0x2701, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x8525, 0x4045, 0x8658},
	{0x2701, 0x4014, 0x2812, 0x1503, 0x1636, 0x4034, 0x8525, 0x4045, 0x8658},
	{0x2812, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x4014, 0x8525, 0x4045, 0x8658},
	{0x2812, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x2701, 0x2812, 0x4045, 0x8658, 0x89AC, 0x199B, 0x1636, 0x4034},
	{0x2701, 0x4014, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x4014, 0x4045, 0x8658, 0x89AC, 0x199B, 0x1636, 0x4034},
	{0x8658, 0x8878, 0x8ABC, 0x89AC, 0x1503, 0x1636, 0x4034},
	{0x2701, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x8658, 0x8878, 0x8ABC, 0x89AC},
	{0x8658, 0x8878, 0x8ABC, 0x89AC, 0x2701, 0x4014, 0x2812, 0x1503, 0x1636, 0x4034},
	{0x2812, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x4014, 0x8658, 0x8878, 0x8ABC, 0x89AC},
	{0x2812, 0x8525, 0x8658, 0x8878, 0x8ABC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x2701, 0x2812, 0x8525, 0x8658, 0x8878, 0x8ABC, 0x199B, 0x1636, 0x4034},
	{0x2701, 0x4014, 0x8525, 0x8658, 0x8878, 0x8ABC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x4014, 0x8525, 0x8658, 0x8878, 0x8ABC, 0x199B, 0x1636, 0x4034},
	{0x8525, 0x4045, 0x8878, 0x8ABC, 0x89AC, 0x1503, 0x1636, 0x4034},
	{0x2701, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x8525, 0x4045, 0x8878, 0x8ABC, 0x89AC},
	{0x8525, 0x4045, 0x8878, 0x8ABC, 0x89AC, 0x2701, 0x4014, 0x2812, 0x1503, 0x1636, 0x4034},
	{0x2812, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x4014, 0x8525, 0x4045, 0x8878, 0x8ABC, 0x89AC},
	{0x2812, 0x4045, 0x8878, 0x8ABC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x2701, 0x2812, 0x4045, 0x8878, 0x8ABC, 0x199B, 0x1636, 0x4034},
	{0x2701, 0x4014, 0x4045, 0x8878, 0x8ABC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x4014, 0x4045, 0x8878, 0x8ABC, 0x199B, 0x1636, 0x4034},
	{0x1503, 0x1636, 0x4034, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x4014, 0x2812, 0x1503, 0x1636, 0x4034, 0x4047, 0x8767, 0x8878},
	{0x2812, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x4014, 0x4047, 0x8767, 0x8878},
	{0x2812, 0x8525, 0x89AC, 0x2A9A, 0x1503, 0x1636, 0x4034, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x2812, 0x8525, 0x89AC, 0x199B, 0x1636, 0x4034, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x4014, 0x8525, 0x89AC, 0x2A9A, 0x1503, 0x1636, 0x4034, 0x4047, 0x8767, 0x8878},
	{0x4014, 0x8525, 0x89AC, 0x199B, 0x1636, 0x4034, 0x4047, 0x8767, 0x8878},
	{0x1503, 0x1636, 0x4034, 0x8525, 0x4045, 0x8658, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x8525, 0x4045, 0x8658, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x4014, 0x2812, 0x1503, 0x1636, 0x4034, 0x8525, 0x4045, 0x8658, 0x4047, 0x8767, 0x8878},
	{0x2812, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x4014, 0x8525, 0x4045, 0x8658, 0x4047, 0x8767, 0x8878},
	{0x2812, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x1503, 0x1636, 0x4034, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x2812, 0x4045, 0x8658, 0x89AC, 0x199B, 0x1636, 0x4034, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x4014, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x1503, 0x1636, 0x4034, 0x4047, 0x8767, 0x8878},
	{0x4014, 0x4045, 0x8658, 0x89AC, 0x199B, 0x1636, 0x4034, 0x4047, 0x8767, 0x8878},
	{0x4047, 0x8767, 0x8ABC, 0x89AC, 0x8658, 0x1503, 0x1636, 0x4034},
	{0x2701, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x4047, 0x8767, 0x8ABC, 0x89AC, 0x8658},
	{0x4047, 0x8767, 0x8ABC, 0x89AC, 0x8658, 0x2701, 0x4014, 0x2812, 0x1503, 0x1636, 0x4034},
	{0x2812, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x4014, 0x4047, 0x8767, 0x8ABC, 0x89AC, 0x8658},
	{0x2812, 0x8525, 0x8658, 0x4047, 0x8767, 0x8ABC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x2701, 0x2812, 0x8525, 0x8658, 0x4047, 0x8767, 0x8ABC, 0x199B, 0x1636, 0x4034},
	{0x2701, 0x4014, 0x8525, 0x8658, 0x4047, 0x8767, 0x8ABC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x4014, 0x8525, 0x8658, 0x4047, 0x8767, 0x8ABC, 0x199B, 0x1636, 0x4034},
	{0x8525, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x89AC, 0x1503, 0x1636, 0x4034},
	{0x8525, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x89AC, 0x2701, 0x2A9A, 0x199B, 0x1636, 0x4034},
	{0x8525, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x89AC, 0x2701, 0x4014, 0x2812, 0x1503, 0x1636, 0x4034},
	{0x2812, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x4014, 0x8525, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x89AC},
	{0x2812, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x2701, 0x2812, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x199B, 0x1636, 0x4034},
	{0x2701, 0x4014, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x4014, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x199B, 0x1636, 0x4034},
	{0x1503, 0x199B, 0x8ABC, 0x8767, 0x4034},
	{0x2701, 0x2A9A, 0x8ABC, 0x8767, 0x4034},
	{0x1503, 0x199B, 0x8ABC, 0x8767, 0x4034, 0x2701, 0x4014, 0x2812},
	{0x2812, 0x2A9A, 0x8ABC, 0x8767, 0x4034, 0x4014},
	{0x1503, 0x199B, 0x8ABC, 0x8767, 0x4034, 0x2812, 0x8525, 0x89AC, 0x2A9A},
	{0x2701, 0x2812, 0x8525, 0x89AC, 0x8ABC, 0x8767, 0x4034},
	{0x2701, 0x4014, 0x8525, 0x89AC, 0x2A9A, 0x1503, 0x199B, 0x8ABC, 0x8767, 0x4034},
	{0x4014, 0x8525, 0x89AC, 0x8ABC, 0x8767, 0x4034},
	{0x1503, 0x199B, 0x8ABC, 0x8767, 0x4034, 0x8525, 0x4045, 0x8658},
	{0x2701, 0x2A9A, 0x8ABC, 0x8767, 0x4034, 0x8525, 0x4045, 0x8658},
	{0x1503, 0x199B, 0x8ABC, 0x8767, 0x4034, 0x2701, 0x4014, 0x2812, 0x8525, 0x4045, 0x8658},
	{0x2812, 0x2A9A, 0x8ABC, 0x8767, 0x4034, 0x4014, 0x8525, 0x4045, 0x8658},
	{0x1503, 0x199B, 0x8ABC, 0x8767, 0x4034, 0x2812, 0x4045, 0x8658, 0x89AC, 0x2A9A},
	{0x2701, 0x2812, 0x4045, 0x8658, 0x89AC, 0x8ABC, 0x8767, 0x4034},
	{0x2701, 0x4014, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x1503, 0x199B, 0x8ABC, 0x8767, 0x4034},
	{0x4014, 0x4045, 0x8658, 0x89AC, 0x8ABC, 0x8767, 0x4034},
	{0x1503, 0x199B, 0x89AC, 0x8658, 0x8878, 0x8767, 0x4034},
	{0x2701, 0x2A9A, 0x89AC, 0x8658, 0x8878, 0x8767, 0x4034},
	{0x1503, 0x199B, 0x89AC, 0x8658, 0x8878, 0x8767, 0x4034, 0x2701, 0x4014, 0x2812},
	{0x2812, 0x2A9A, 0x89AC, 0x8658, 0x8878, 0x8767, 0x4034, 0x4014},
	{0x1503, 0x199B, 0x2A9A, 0x2812, 0x8525, 0x8658, 0x8878, 0x8767, 0x4034},
	{0x2701, 0x2812, 0x8525, 0x8658, 0x8878, 0x8767, 0x4034},
	{0x2701, 0x4014, 0x8525, 0x8658, 0x8878, 0x8767, 0x4034, 0x1503, 0x199B, 0x2A9A},
	{0x4014, 0x8525, 0x8658, 0x8878, 0x8767, 0x4034},
	{0x1503, 0x199B, 0x89AC, 0x8525, 0x4045, 0x8878, 0x8767, 0x4034},
	{0x2701, 0x2A9A, 0x89AC, 0x8525, 0x4045, 0x8878, 0x8767, 0x4034},
	{0x1503, 0x199B, 0x89AC, 0x8525, 0x4045, 0x8878, 0x8767, 0x4034, 0x2701, 0x4014, 0x2812},
	{0x2812, 0x2A9A, 0x89AC, 0x8525, 0x4045, 0x8878, 0x8767, 0x4034, 0x4014},
	{0x1503, 0x199B, 0x2A9A, 0x2812, 0x4045, 0x8878, 0x8767, 0x4034},
	{0x2701, 0x2812, 0x4045, 0x8878, 0x8767, 0x4034},
	{0x2701, 0x4014, 0x4045, 0x8878, 0x8767, 0x4034, 0x1503, 0x199B, 0x2A9A},
	{0x4014, 0x4045, 0x8878, 0x8767, 0x4034},
	{0x1503, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x4034},
	{0x2701, 0x2A9A, 0x8ABC, 0x8878, 0x4047, 0x4034},
	{0x1503, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x4034, 0x2701, 0x4014, 0x2812},
	{0x2812, 0x2A9A, 0x8ABC, 0x8878, 0x4047, 0x4034, 0x4014},
	{0x1503, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x4034, 0x2812, 0x8525, 0x89AC, 0x2A9A},
	{0x2701, 0x2812, 0x8525, 0x89AC, 0x8ABC, 0x8878, 0x4047, 0x4034},
	{0x1503, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x4034, 0x2701, 0x4014, 0x8525, 0x89AC, 0x2A9A},
	{0x4014, 0x8525, 0x89AC, 0x8ABC, 0x8878, 0x4047, 0x4034},
	{0x1503, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x4034, 0x8525, 0x4045, 0x8658},
	{0x2701, 0x2A9A, 0x8ABC, 0x8878, 0x4047, 0x4034, 0x8525, 0x4045, 0x8658},
	{0x1503, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x4034, 0x2701, 0x4014, 0x2812, 0x8525, 0x4045, 0x8658},
	{0x2812, 0x2A9A, 0x8ABC, 0x8878, 0x4047, 0x4034, 0x4014, 0x8525, 0x4045, 0x8658},
	{0x1503, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x4034, 0x2812, 0x4045, 0x8658, 0x89AC, 0x2A9A},
	{0x2701, 0x2812, 0x4045, 0x8658, 0x89AC, 0x8ABC, 0x8878, 0x4047, 0x4034},
	{0x2701, 0x4014, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x1503, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x4034},
	{0x4014, 0x4045, 0x8658, 0x89AC, 0x8ABC, 0x8878, 0x4047, 0x4034},
	{0x1503, 0x199B, 0x89AC, 0x8658, 0x4047, 0x4034},
	{0x2701, 0x2A9A, 0x89AC, 0x8658, 0x4047, 0x4034},
	{0x1503, 0x199B, 0x89AC, 0x8658, 0x4047, 0x4034, 0x2701, 0x4014, 0x2812},
	{0x2812, 0x2A9A, 0x89AC, 0x8658, 0x4047, 0x4034, 0x4014},
	{0x1503, 0x199B, 0x2A9A, 0x2812, 0x8525, 0x8658, 0x4047, 0x4034},
	{0x2701, 0x2812, 0x8525, 0x8658, 0x4047, 0x4034},
	{0x2701, 0x4014, 0x8525, 0x8658, 0x4047, 0x4034, 0x1503, 0x199B, 0x2A9A},
	{0x4014, 0x8525, 0x8658, 0x4047, 0x4034},
	{0x1503, 0x199B, 0x89AC, 0x8525, 0x4045, 0x4047, 0x4034},
	{0x2701, 0x2A9A, 0x89AC, 0x8525, 0x4045, 0x4047, 0x4034},
	{0x1503, 0x199B, 0x89AC, 0x8525, 0x4045, 0x4047, 0x4034, 0x2701, 0x4014, 0x2812},
	{0x2812, 0x2A9A, 0x89AC, 0x8525, 0x4045, 0x4047, 0x4034, 0x4014},
	{0x1503, 0x199B, 0x2A9A, 0x2812, 0x4045, 0x4047, 0x4034},
	{0x2701, 0x2812, 0x4045, 0x4047, 0x4034},
	{0x2701, 0x4014, 0x4045, 0x4047, 0x4034, 0x1503, 0x199B, 0x2A9A},
	{0x4014, 0x4045, 0x4047, 0x4034},
	{0x4014, 0x4045, 0x4047, 0x4034},
	{0x2701, 0x4014, 0x4045, 0x4047, 0x4034, 0x1503, 0x199B, 0x2A9A},
	{0x2701, 0x2812, 0x4045, 0x4047, 0x4034},
	{0x1503, 0x199B, 0x2A9A, 0x2812, 0x4045, 0x4047, 0x4034},
	{0x2812, 0x2A9A, 0x89AC, 0x8525, 0x4045, 0x4047, 0x4034, 0x4014},
	{0x1503, 0x199B, 0x89AC, 0x8525, 0x4045, 0x4047, 0x4034, 0x2701, 0x4014, 0x2812},
	{0x2701, 0x2A9A, 0x89AC, 0x8525, 0x4045, 0x4047, 0x4034},
	{0x1503, 0x199B, 0x89AC, 0x8525, 0x4045, 0x4047, 0x4034},
	{0x4014, 0x8525, 0x8658, 0x4047, 0x4034},
	{0x2701, 0x4014, 0x8525, 0x8658, 0x4047, 0x4034, 0x1503, 0x199B, 0x2A9A},
	{0x2701, 0x2812, 0x8525, 0x8658, 0x4047, 0x4034},
	{0x1503, 0x199B, 0x2A9A, 0x2812, 0x8525, 0x8658, 0x4047, 0x4034},
	{0x2812, 0x2A9A, 0x89AC, 0x8658, 0x4047, 0x4034, 0x4014},
	{0x1503, 0x199B, 0x89AC, 0x8658, 0x4047, 0x4034, 0x2701, 0x4014, 0x2812},
	{0x2701, 0x2A9A, 0x89AC, 0x8658, 0x4047, 0x4034},
	{0x1503, 0x199B, 0x89AC, 0x8658, 0x4047, 0x4034},
	{0x4014, 0x4045, 0x8658, 0x89AC, 0x8ABC, 0x8878, 0x4047, 0x4034},
	{0x2701, 0x4014, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x1503, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x4034},
	{0x2701, 0x2812, 0x4045, 0x8658, 0x89AC, 0x8ABC, 0x8878, 0x4047, 0x4034},
	{0x1503, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x4034, 0x2812, 0x4045, 0x8658, 0x89AC, 0x2A9A},
	{0x2812, 0x2A9A, 0x8ABC, 0x8878, 0x4047, 0x4034, 0x4014, 0x8525, 0x4045, 0x8658},
	{0x1503, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x4034, 0x2701, 0x4014, 0x2812, 0x8525, 0x4045, 0x8658},
	{0x2701, 0x2A9A, 0x8ABC, 0x8878, 0x4047, 0x4034, 0x8525, 0x4045, 0x8658},
	{0x1503, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x4034, 0x8525, 0x4045, 0x8658},
	{0x4014, 0x8525, 0x89AC, 0x8ABC, 0x8878, 0x4047, 0x4034},
	{0x1503, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x4034, 0x2701, 0x4014, 0x8525, 0x89AC, 0x2A9A},
	{0x2701, 0x2812, 0x8525, 0x89AC, 0x8ABC, 0x8878, 0x4047, 0x4034},
	{0x1503, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x4034, 0x2812, 0x8525, 0x89AC, 0x2A9A},
	{0x2812, 0x2A9A, 0x8ABC, 0x8878, 0x4047, 0x4034, 0x4014},
	{0x1503, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x4034, 0x2701, 0x4014, 0x2812},
	{0x2701, 0x2A9A, 0x8ABC, 0x8878, 0x4047, 0x4034},
	{0x1503, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x4034},
	{0x4014, 0x4045, 0x8878, 0x8767, 0x4034},
	{0x2701, 0x4014, 0x4045, 0x8878, 0x8767, 0x4034, 0x1503, 0x199B, 0x2A9A},
	{0x2701, 0x2812, 0x4045, 0x8878, 0x8767, 0x4034},
	{0x1503, 0x199B, 0x2A9A, 0x2812, 0x4045, 0x8878, 0x8767, 0x4034},
	{0x2812, 0x2A9A, 0x89AC, 0x8525, 0x4045, 0x8878, 0x8767, 0x4034, 0x4014},
	{0x1503, 0x199B, 0x89AC, 0x8525, 0x4045, 0x8878, 0x8767, 0x4034, 0x2701, 0x4014, 0x2812},
	{0x2701, 0x2A9A, 0x89AC, 0x8525, 0x4045, 0x8878, 0x8767, 0x4034},
	{0x1503, 0x199B, 0x89AC, 0x8525, 0x4045, 0x8878, 0x8767, 0x4034},
	{0x4014, 0x8525, 0x8658, 0x8878, 0x8767, 0x4034},
	{0x2701, 0x4014, 0x8525, 0x8658, 0x8878, 0x8767, 0x4034, 0x1503, 0x199B, 0x2A9A},
	{0x2701, 0x2812, 0x8525, 0x8658, 0x8878, 0x8767, 0x4034},
	{0x1503, 0x199B, 0x2A9A, 0x2812, 0x8525, 0x8658, 0x8878, 0x8767, 0x4034},
	{0x2812, 0x2A9A, 0x89AC, 0x8658, 0x8878, 0x8767, 0x4034, 0x4014},
	{0x1503, 0x199B, 0x89AC, 0x8658, 0x8878, 0x8767, 0x4034, 0x2701, 0x4014, 0x2812},
	{0x2701, 0x2A9A, 0x89AC, 0x8658, 0x8878, 0x8767, 0x4034},
	{0x1503, 0x199B, 0x89AC, 0x8658, 0x8878, 0x8767, 0x4034},
	{0x4014, 0x4045, 0x8658, 0x89AC, 0x8ABC, 0x8767, 0x4034},
	{0x2701, 0x4014, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x1503, 0x199B, 0x8ABC, 0x8767, 0x4034},
	{0x2701, 0x2812, 0x4045, 0x8658, 0x89AC, 0x8ABC, 0x8767, 0x4034},
	{0x1503, 0x199B, 0x8ABC, 0x8767, 0x4034, 0x2812, 0x4045, 0x8658, 0x89AC, 0x2A9A},
	{0x2812, 0x2A9A, 0x8ABC, 0x8767, 0x4034, 0x4014, 0x8525, 0x4045, 0x8658},
	{0x1503, 0x199B, 0x8ABC, 0x8767, 0x4034, 0x2701, 0x4014, 0x2812, 0x8525, 0x4045, 0x8658},
	{0x2701, 0x2A9A, 0x8ABC, 0x8767, 0x4034, 0x8525, 0x4045, 0x8658},
	{0x1503, 0x199B, 0x8ABC, 0x8767, 0x4034, 0x8525, 0x4045, 0x8658},
	{0x4014, 0x8525, 0x89AC, 0x8ABC, 0x8767, 0x4034},
	{0x2701, 0x4014, 0x8525, 0x89AC, 0x2A9A, 0x1503, 0x199B, 0x8ABC, 0x8767, 0x4034},
	{0x2701, 0x2812, 0x8525, 0x89AC, 0x8ABC, 0x8767, 0x4034},
	{0x1503, 0x199B, 0x8ABC, 0x8767, 0x4034, 0x2812, 0x8525, 0x89AC, 0x2A9A},
	{0x2812, 0x2A9A, 0x8ABC, 0x8767, 0x4034, 0x4014},
	{0x1503, 0x199B, 0x8ABC, 0x8767, 0x4034, 0x2701, 0x4014, 0x2812},
	{0x2701, 0x2A9A, 0x8ABC, 0x8767, 0x4034},
	{0x1503, 0x199B, 0x8ABC, 0x8767, 0x4034},
	{0x4014, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x199B, 0x1636, 0x4034},
	{0x2701, 0x4014, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x2701, 0x2812, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x199B, 0x1636, 0x4034},
	{0x2812, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x2812, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x4014, 0x8525, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x89AC},
	{0x8525, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x89AC, 0x2701, 0x4014, 0x2812, 0x1503, 0x1636, 0x4034},
	{0x8525, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x89AC, 0x2701, 0x2A9A, 0x199B, 0x1636, 0x4034},
	{0x8525, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x89AC, 0x1503, 0x1636, 0x4034},
	{0x4014, 0x8525, 0x8658, 0x4047, 0x8767, 0x8ABC, 0x199B, 0x1636, 0x4034},
	{0x2701, 0x4014, 0x8525, 0x8658, 0x4047, 0x8767, 0x8ABC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x2701, 0x2812, 0x8525, 0x8658, 0x4047, 0x8767, 0x8ABC, 0x199B, 0x1636, 0x4034},
	{0x2812, 0x8525, 0x8658, 0x4047, 0x8767, 0x8ABC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x2812, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x4014, 0x4047, 0x8767, 0x8ABC, 0x89AC, 0x8658},
	{0x4047, 0x8767, 0x8ABC, 0x89AC, 0x8658, 0x2701, 0x4014, 0x2812, 0x1503, 0x1636, 0x4034},
	{0x2701, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x4047, 0x8767, 0x8ABC, 0x89AC, 0x8658},
	{0x4047, 0x8767, 0x8ABC, 0x89AC, 0x8658, 0x1503, 0x1636, 0x4034},
	{0x4014, 0x4045, 0x8658, 0x89AC, 0x199B, 0x1636, 0x4034, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x4014, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x1503, 0x1636, 0x4034, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x2812, 0x4045, 0x8658, 0x89AC, 0x199B, 0x1636, 0x4034, 0x4047, 0x8767, 0x8878},
	{0x2812, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x1503, 0x1636, 0x4034, 0x4047, 0x8767, 0x8878},
	{0x2812, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x4014, 0x8525, 0x4045, 0x8658, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x4014, 0x2812, 0x1503, 0x1636, 0x4034, 0x8525, 0x4045, 0x8658, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x8525, 0x4045, 0x8658, 0x4047, 0x8767, 0x8878},
	{0x1503, 0x1636, 0x4034, 0x8525, 0x4045, 0x8658, 0x4047, 0x8767, 0x8878},
	{0x4014, 0x8525, 0x89AC, 0x199B, 0x1636, 0x4034, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x4014, 0x8525, 0x89AC, 0x2A9A, 0x1503, 0x1636, 0x4034, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x2812, 0x8525, 0x89AC, 0x199B, 0x1636, 0x4034, 0x4047, 0x8767, 0x8878},
	{0x2812, 0x8525, 0x89AC, 0x2A9A, 0x1503, 0x1636, 0x4034, 0x4047, 0x8767, 0x8878},
	{0x2812, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x4014, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x4014, 0x2812, 0x1503, 0x1636, 0x4034, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x4047, 0x8767, 0x8878},
	{0x1503, 0x1636, 0x4034, 0x4047, 0x8767, 0x8878},
	{0x4014, 0x4045, 0x8878, 0x8ABC, 0x199B, 0x1636, 0x4034},
	{0x2701, 0x4014, 0x4045, 0x8878, 0x8ABC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x2701, 0x2812, 0x4045, 0x8878, 0x8ABC, 0x199B, 0x1636, 0x4034},
	{0x2812, 0x4045, 0x8878, 0x8ABC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x2812, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x4014, 0x8525, 0x4045, 0x8878, 0x8ABC, 0x89AC},
	{0x8525, 0x4045, 0x8878, 0x8ABC, 0x89AC, 0x2701, 0x4014, 0x2812, 0x1503, 0x1636, 0x4034},
	{0x2701, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x8525, 0x4045, 0x8878, 0x8ABC, 0x89AC},
	{0x8525, 0x4045, 0x8878, 0x8ABC, 0x89AC, 0x1503, 0x1636, 0x4034},
	{0x4014, 0x8525, 0x8658, 0x8878, 0x8ABC, 0x199B, 0x1636, 0x4034},
	{0x2701, 0x4014, 0x8525, 0x8658, 0x8878, 0x8ABC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x2701, 0x2812, 0x8525, 0x8658, 0x8878, 0x8ABC, 0x199B, 0x1636, 0x4034},
	{0x2812, 0x8525, 0x8658, 0x8878, 0x8ABC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x2812, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x4014, 0x8658, 0x8878, 0x8ABC, 0x89AC},
	{0x8658, 0x8878, 0x8ABC, 0x89AC, 0x2701, 0x4014, 0x2812, 0x1503, 0x1636, 0x4034},
	{0x2701, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x8658, 0x8878, 0x8ABC, 0x89AC},
	{0x8658, 0x8878, 0x8ABC, 0x89AC, 0x1503, 0x1636, 0x4034},
	{0x4014, 0x4045, 0x8658, 0x89AC, 0x199B, 0x1636, 0x4034},
	{0x2701, 0x4014, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x2701, 0x2812, 0x4045, 0x8658, 0x89AC, 0x199B, 0x1636, 0x4034},
	{0x2812, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x2812, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x4014, 0x8525, 0x4045, 0x8658},
	{0x2701, 0x4014, 0x2812, 0x1503, 0x1636, 0x4034, 0x8525, 0x4045, 0x8658},
	{0x2701, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x8525, 0x4045, 0x8658},
	{0x1503, 0x1636, 0x4034, 0x8525, 0x4045, 0x8658},
	{0x4014, 0x8525, 0x89AC, 0x199B, 0x1636, 0x4034},
	{0x2701, 0x4014, 0x8525, 0x89AC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x2701, 0x2812, 0x8525, 0x89AC, 0x199B, 0x1636, 0x4034},
	{0x2812, 0x8525, 0x89AC, 0x2A9A, 0x1503, 0x1636, 0x4034},
	{0x2812, 0x2A9A, 0x199B, 0x1636, 0x4034, 0x4014},
	{0x2701, 0x4014, 0x2812, 0x1503, 0x1636, 0x4034},
	{0x2701, 0x2A9A, 0x199B, 0x1636, 0x4034},
	{0x1503, 0x1636, 0x4034},
	{0x1503, 0x4014, 0x4045, 0x4047, 0x1636},
	{0x2701, 0x4014, 0x4045, 0x4047, 0x1636, 0x199B, 0x2A9A},
	{0x2701, 0x2812, 0x4045, 0x4047, 0x1636, 0x1503},
	{0x2812, 0x4045, 0x4047, 0x1636, 0x199B, 0x2A9A},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x89AC, 0x8525, 0x4045, 0x4047, 0x1636},
	{0x8525, 0x4045, 0x4047, 0x1636, 0x199B, 0x89AC, 0x2701, 0x4014, 0x2812},
	{0x2701, 0x2A9A, 0x89AC, 0x8525, 0x4045, 0x4047, 0x1636, 0x1503},
	{0x8525, 0x4045, 0x4047, 0x1636, 0x199B, 0x89AC},
	{0x1503, 0x4014, 0x8525, 0x8658, 0x4047, 0x1636},
	{0x2701, 0x4014, 0x8525, 0x8658, 0x4047, 0x1636, 0x199B, 0x2A9A},
	{0x2701, 0x2812, 0x8525, 0x8658, 0x4047, 0x1636, 0x1503},
	{0x2812, 0x8525, 0x8658, 0x4047, 0x1636, 0x199B, 0x2A9A},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x89AC, 0x8658, 0x4047, 0x1636},
	{0x1636, 0x199B, 0x89AC, 0x8658, 0x4047, 0x2701, 0x4014, 0x2812},
	{0x2701, 0x2A9A, 0x89AC, 0x8658, 0x4047, 0x1636, 0x1503},
	{0x1636, 0x199B, 0x89AC, 0x8658, 0x4047},
	{0x1503, 0x4014, 0x4045, 0x8658, 0x89AC, 0x8ABC, 0x8878, 0x4047, 0x1636},
	{0x2701, 0x4014, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x1636, 0x199B, 0x8ABC, 0x8878, 0x4047},
	{0x2701, 0x2812, 0x4045, 0x8658, 0x89AC, 0x8ABC, 0x8878, 0x4047, 0x1636, 0x1503},
	{0x2812, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x1636, 0x199B, 0x8ABC, 0x8878, 0x4047},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x8ABC, 0x8878, 0x4047, 0x1636, 0x8525, 0x4045, 0x8658},
	{0x1636, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x2701, 0x4014, 0x2812, 0x8525, 0x4045, 0x8658},
	{0x2701, 0x2A9A, 0x8ABC, 0x8878, 0x4047, 0x1636, 0x1503, 0x8525, 0x4045, 0x8658},
	{0x1636, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x8525, 0x4045, 0x8658},
	{0x1503, 0x4014, 0x8525, 0x89AC, 0x8ABC, 0x8878, 0x4047, 0x1636},
	{0x2701, 0x4014, 0x8525, 0x89AC, 0x2A9A, 0x1636, 0x199B, 0x8ABC, 0x8878, 0x4047},
	{0x2701, 0x2812, 0x8525, 0x89AC, 0x8ABC, 0x8878, 0x4047, 0x1636, 0x1503},
	{0x1636, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x2812, 0x8525, 0x89AC, 0x2A9A},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x8ABC, 0x8878, 0x4047, 0x1636},
	{0x1636, 0x199B, 0x8ABC, 0x8878, 0x4047, 0x2701, 0x4014, 0x2812},
	{0x2701, 0x2A9A, 0x8ABC, 0x8878, 0x4047, 0x1636, 0x1503},
	{0x1636, 0x199B, 0x8ABC, 0x8878, 0x4047},
	{0x1503, 0x4014, 0x4045, 0x8878, 0x8767, 0x1636},
	{0x2701, 0x4014, 0x4045, 0x8878, 0x8767, 0x1636, 0x199B, 0x2A9A},
	{0x2701, 0x2812, 0x4045, 0x8878, 0x8767, 0x1636, 0x1503},
	{0x2812, 0x4045, 0x8878, 0x8767, 0x1636, 0x199B, 0x2A9A},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x89AC, 0x8525, 0x4045, 0x8878, 0x8767, 0x1636},
	{0x8525, 0x4045, 0x8878, 0x8767, 0x1636, 0x199B, 0x89AC, 0x2701, 0x4014, 0x2812},
	{0x2701, 0x2A9A, 0x89AC, 0x8525, 0x4045, 0x8878, 0x8767, 0x1636, 0x1503},
	{0x8525, 0x4045, 0x8878, 0x8767, 0x1636, 0x199B, 0x89AC},
	{0x1503, 0x4014, 0x8525, 0x8658, 0x8878, 0x8767, 0x1636},
	{0x2701, 0x4014, 0x8525, 0x8658, 0x8878, 0x8767, 0x1636, 0x199B, 0x2A9A},
	{0x2701, 0x2812, 0x8525, 0x8658, 0x8878, 0x8767, 0x1636, 0x1503},
	{0x2812, 0x8525, 0x8658, 0x8878, 0x8767, 0x1636, 0x199B, 0x2A9A},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x89AC, 0x8658, 0x8878, 0x8767, 0x1636},
	{0x1636, 0x199B, 0x89AC, 0x8658, 0x8878, 0x8767, 0x2701, 0x4014, 0x2812},
	{0x2701, 0x2A9A, 0x89AC, 0x8658, 0x8878, 0x8767, 0x1636, 0x1503},
	{0x1636, 0x199B, 0x89AC, 0x8658, 0x8878, 0x8767},
	{0x1503, 0x4014, 0x4045, 0x8658, 0x89AC, 0x8ABC, 0x8767, 0x1636},
	{0x2701, 0x4014, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x1636, 0x199B, 0x8ABC, 0x8767},
	{0x2701, 0x2812, 0x4045, 0x8658, 0x89AC, 0x8ABC, 0x8767, 0x1636, 0x1503},
	{0x2812, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x1636, 0x199B, 0x8ABC, 0x8767},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x8ABC, 0x8767, 0x1636, 0x8525, 0x4045, 0x8658},
	{0x1636, 0x199B, 0x8ABC, 0x8767, 0x2701, 0x4014, 0x2812, 0x8525, 0x4045, 0x8658},
	{0x2701, 0x2A9A, 0x8ABC, 0x8767, 0x1636, 0x1503, 0x8525, 0x4045, 0x8658},
	{0x1636, 0x199B, 0x8ABC, 0x8767, 0x8525, 0x4045, 0x8658},
	{0x1503, 0x4014, 0x8525, 0x89AC, 0x8ABC, 0x8767, 0x1636},
	{0x2701, 0x4014, 0x8525, 0x89AC, 0x2A9A, 0x1636, 0x199B, 0x8ABC, 0x8767},
	{0x2701, 0x2812, 0x8525, 0x89AC, 0x8ABC, 0x8767, 0x1636, 0x1503},
	{0x2812, 0x8525, 0x89AC, 0x2A9A, 0x1636, 0x199B, 0x8ABC, 0x8767},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x8ABC, 0x8767, 0x1636},
	{0x1636, 0x199B, 0x8ABC, 0x8767, 0x2701, 0x4014, 0x2812},
	{0x2701, 0x2A9A, 0x8ABC, 0x8767, 0x1636, 0x1503},
	{0x1636, 0x199B, 0x8ABC, 0x8767},
	{0x1503, 0x4014, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x199B},
	{0x2701, 0x4014, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x2A9A},
	{0x2701, 0x2812, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x199B, 0x1503},
	{0x2812, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x2A9A},
	{0x8525, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x89AC, 0x1503, 0x4014, 0x2812, 0x2A9A, 0x199B},
	{0x8525, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x89AC, 0x2701, 0x4014, 0x2812},
	{0x8525, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x89AC, 0x2701, 0x2A9A, 0x199B, 0x1503},
	{0x8525, 0x4045, 0x4047, 0x8767, 0x8ABC, 0x89AC},
	{0x1503, 0x4014, 0x8525, 0x8658, 0x4047, 0x8767, 0x8ABC, 0x199B},
	{0x2701, 0x4014, 0x8525, 0x8658, 0x4047, 0x8767, 0x8ABC, 0x2A9A},
	{0x2701, 0x2812, 0x8525, 0x8658, 0x4047, 0x8767, 0x8ABC, 0x199B, 0x1503},
	{0x2812, 0x8525, 0x8658, 0x4047, 0x8767, 0x8ABC, 0x2A9A},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x199B, 0x4047, 0x8767, 0x8ABC, 0x89AC, 0x8658},
	{0x4047, 0x8767, 0x8ABC, 0x89AC, 0x8658, 0x2701, 0x4014, 0x2812},
	{0x4047, 0x8767, 0x8ABC, 0x89AC, 0x8658, 0x2701, 0x2A9A, 0x199B, 0x1503},
	{0x4047, 0x8767, 0x8ABC, 0x89AC, 0x8658},
	{0x1503, 0x4014, 0x4045, 0x8658, 0x89AC, 0x199B, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x4014, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x2812, 0x4045, 0x8658, 0x89AC, 0x199B, 0x1503, 0x4047, 0x8767, 0x8878},
	{0x2812, 0x4045, 0x8658, 0x89AC, 0x2A9A, 0x4047, 0x8767, 0x8878},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x199B, 0x8525, 0x4045, 0x8658, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x4014, 0x2812, 0x8525, 0x4045, 0x8658, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x2A9A, 0x199B, 0x1503, 0x8525, 0x4045, 0x8658, 0x4047, 0x8767, 0x8878},
	{0x8525, 0x4045, 0x8658, 0x4047, 0x8767, 0x8878},
	{0x1503, 0x4014, 0x8525, 0x89AC, 0x199B, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x4014, 0x8525, 0x89AC, 0x2A9A, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x2812, 0x8525, 0x89AC, 0x199B, 0x1503, 0x4047, 0x8767, 0x8878},
	{0x2812, 0x8525, 0x89AC, 0x2A9A, 0x4047, 0x8767, 0x8878},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x199B, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x4014, 0x2812, 0x4047, 0x8767, 0x8878},
	{0x2701, 0x2A9A, 0x199B, 0x1503, 0x4047, 0x8767, 0x8878},
	{0x4047, 0x8767, 0x8878},
	{0x1503, 0x4014, 0x4045, 0x8878, 0x8ABC, 0x199B},
	{0x2701, 0x4014, 0x4045, 0x8878, 0x8ABC, 0x2A9A},
	{0x2701, 0x2812, 0x4045, 0x8878, 0x8ABC, 0x199B, 0x1503},
	{0x2812, 0x4045, 0x8878, 0x8ABC, 0x2A9A},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x199B, 0x8525, 0x4045, 0x8878, 0x8ABC, 0x89AC},
	{0x8525, 0x4045, 0x8878, 0x8ABC, 0x89AC, 0x2701, 0x4014, 0x2812},
	{0x8525, 0x4045, 0x8878, 0x8ABC, 0x89AC, 0x2701, 0x2A9A, 0x199B, 0x1503},
	{0x8525, 0x4045, 0x8878, 0x8ABC, 0x89AC},
	{0x1503, 0x4014, 0x8525, 0x8658, 0x8878, 0x8ABC, 0x199B},
	{0x2701, 0x4014, 0x8525, 0x8658, 0x8878, 0x8ABC, 0x2A9A},
	{0x2701, 0x2812, 0x8525, 0x8658, 0x8878, 0x8ABC, 0x199B, 0x1503},
	{0x2812, 0x8525, 0x8658, 0x8878, 0x8ABC, 0x2A9A},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x199B, 0x8658, 0x8878, 0x8ABC, 0x89AC},
	{0x8658, 0x8878, 0x8ABC, 0x89AC, 0x2701, 0x4014, 0x2812},
	{0x2701, 0x2A9A, 0x199B, 0x1503, 0x8658, 0x8878, 0x8ABC, 0x89AC},
	{0x8658, 0x8878, 0x8ABC, 0x89AC},
	{0x1503, 0x4014, 0x4045, 0x8658, 0x89AC, 0x199B},
	{0x2701, 0x4014, 0x4045, 0x8658, 0x89AC, 0x2A9A},
	{0x2701, 0x2812, 0x4045, 0x8658, 0x89AC, 0x199B, 0x1503},
	{0x2812, 0x4045, 0x8658, 0x89AC, 0x2A9A},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x199B, 0x8525, 0x4045, 0x8658},
	{0x2701, 0x4014, 0x2812, 0x8525, 0x4045, 0x8658},
	{0x2701, 0x2A9A, 0x199B, 0x1503, 0x8525, 0x4045, 0x8658},
	{0x8525, 0x4045, 0x8658},
	{0x1503, 0x4014, 0x8525, 0x89AC, 0x199B},
	{0x2701, 0x4014, 0x8525, 0x89AC, 0x2A9A},
	{0x2701, 0x2812, 0x8525, 0x89AC, 0x199B, 0x1503},
	{0x2812, 0x8525, 0x89AC, 0x2A9A},
	{0x1503, 0x4014, 0x2812, 0x2A9A, 0x199B},
	{0x2701, 0x4014, 0x2812},
	{0x2701, 0x2A9A, 0x199B, 0x1503},
	{},
}

// transitionCornerData gives the reuse direction (high nibble) and cache
// slot (low nibble) for vertices landing exactly on a transition cell node.
var transitionCornerData = [13]uint8{
	0x33, 0x22, 0x23, 0x11, 0x80, 0x81, 0x13, 0x82, 0x83, 0x34, 0x24, 0x14, 0x84,
}
