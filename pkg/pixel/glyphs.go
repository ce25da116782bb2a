// ABOUTME: Static glyph tables indexed by row-major sub-pixel bit patterns
// ABOUTME: Each table enumerates every on/off combination of its block shape

package pixel

var singleGlyphs = [2]rune{' ', '\u2588'}

var dualGlyphs = [4]rune{' ', '\u2580', '\u2584', '\u2588'}

// 2×2 quadrant glyphs.
var quadGlyphs = [16]rune{
	' ', '\u2598', '\u259D', '\u2580', '\u2596', '\u258C', '\u259E', '\u259B',
	'\u2597', '\u259A', '\u2590', '\u259C', '\u2584', '\u2599', '\u259F', '\u2588',
}

// 2×3 sextant glyphs from the Symbols for Legacy Computing block.
var sextantGlyphs = [64]rune{
	' ', '\U0001FB00', '\U0001FB01', '\U0001FB02', '\U0001FB03', '\U0001FB04', '\U0001FB05', '\U0001FB06',
	'\U0001FB07', '\U0001FB08', '\U0001FB09', '\U0001FB0A', '\U0001FB0B', '\U0001FB0C', '\U0001FB0D', '\U0001FB0E',
	'\U0001FB0F', '\U0001FB10', '\U0001FB11', '\U0001FB12', '\U0001FB13', '\u258C', '\U0001FB14', '\U0001FB15',
	'\U0001FB16', '\U0001FB17', '\U0001FB18', '\U0001FB19', '\U0001FB1A', '\U0001FB1B', '\U0001FB1C', '\U0001FB1D',
	'\U0001FB1E', '\U0001FB1F', '\U0001FB20', '\U0001FB21', '\U0001FB22', '\U0001FB23', '\U0001FB24', '\U0001FB25',
	'\U0001FB26', '\U0001FB27', '\u2590', '\U0001FB28', '\U0001FB29', '\U0001FB2A', '\U0001FB2B', '\U0001FB2C',
	'\U0001FB2D', '\U0001FB2E', '\U0001FB2F', '\U0001FB30', '\U0001FB31', '\U0001FB32', '\U0001FB33', '\U0001FB34',
	'\U0001FB35', '\U0001FB36', '\U0001FB37', '\U0001FB38', '\U0001FB39', '\U0001FB3A', '\U0001FB3B', '\u2588',
}

// 2×4 octant glyphs from the Symbols for Legacy Computing Supplement, falling back
// to older block elements where those already depict the pattern.
var octantGlyphs = [256]rune{
	' ', '\U0001CEA8', '\U0001CEAB', '\U0001FB82', '\U0001CD00', '\u2598', '\U0001CD01', '\U0001CD02',
	'\U0001CD03', '\U0001CD04', '\u259D', '\U0001CD05', '\U0001CD06', '\U0001CD07', '\U0001CD08', '\u2580',
	'\U0001CD09', '\U0001CD0A', '\U0001CD0B', '\U0001CD0C', '\U0001FBE6', '\U0001CD0D', '\U0001CD0E', '\U0001CD0F',
	'\U0001CD10', '\U0001CD11', '\U0001CD12', '\U0001CD13', '\U0001CD14', '\U0001CD15', '\U0001CD16', '\U0001CD17',
	'\U0001CD18', '\U0001CD19', '\U0001CD1A', '\U0001CD1B', '\U0001CD1C', '\U0001CD1D', '\U0001CD1E', '\U0001CD1F',
	'\U0001FBE7', '\U0001CD20', '\U0001CD21', '\U0001CD22', '\U0001CD23', '\U0001CD24', '\U0001CD25', '\U0001CD26',
	'\U0001CD27', '\U0001CD28', '\U0001CD29', '\U0001CD2A', '\U0001CD2B', '\U0001CD2C', '\U0001CD2D', '\U0001CD2E',
	'\U0001CD2F', '\U0001CD30', '\U0001CD31', '\U0001CD32', '\U0001CD33', '\U0001CD34', '\U0001CD35', '\U0001FB85',
	'\U0001CEA3', '\U0001CD36', '\U0001CD37', '\U0001CD38', '\U0001CD39', '\U0001CD3A', '\U0001CD3B', '\U0001CD3C',
	'\U0001CD3D', '\U0001CD3E', '\U0001CD3F', '\U0001CD40', '\U0001CD41', '\U0001CD42', '\U0001CD43', '\U0001CD44',
	'\u2596', '\U0001CD45', '\U0001CD46', '\U0001CD47', '\U0001CD48', '\u258C', '\U0001CD49', '\U0001CD4A',
	'\U0001CD4B', '\U0001CD4C', '\u259E', '\U0001CD4D', '\U0001CD4E', '\U0001CD4F', '\U0001CD50', '\u259B',
	'\U0001CD51', '\U0001CD52', '\U0001CD53', '\U0001CD54', '\U0001CD55', '\U0001CD56', '\U0001CD57', '\U0001CD58',
	'\U0001CD59', '\U0001CD5A', '\U0001CD5B', '\U0001CD5C', '\U0001CD5D', '\U0001CD5E', '\U0001CD5F', '\U0001CD60',
	'\U0001CD61', '\U0001CD62', '\U0001CD63', '\U0001CD64', '\U0001CD65', '\U0001CD66', '\U0001CD67', '\U0001CD68',
	'\U0001CD69', '\U0001CD6A', '\U0001CD6B', '\U0001CD6C', '\U0001CD6D', '\U0001CD6E', '\U0001CD6F', '\U0001CD70',
	'\U0001CEA0', '\U0001CD71', '\U0001CD72', '\U0001CD73', '\U0001CD74', '\U0001CD75', '\U0001CD76', '\U0001CD77',
	'\U0001CD78', '\U0001CD79', '\U0001CD7A', '\U0001CD7B', '\U0001CD7C', '\U0001CD7D', '\U0001CD7E', '\U0001CD7F',
	'\U0001CD80', '\U0001CD81', '\U0001CD82', '\U0001CD83', '\U0001CD84', '\U0001CD85', '\U0001CD86', '\U0001CD87',
	'\U0001CD88', '\U0001CD89', '\U0001CD8A', '\U0001CD8B', '\U0001CD8C', '\U0001CD8D', '\U0001CD8E', '\U0001CD8F',
	'\u2597', '\U0001CD90', '\U0001CD91', '\U0001CD92', '\U0001CD93', '\u259A', '\U0001CD94', '\U0001CD95',
	'\U0001CD96', '\U0001CD97', '\u2590', '\U0001CD98', '\U0001CD99', '\U0001CD9A', '\U0001CD9B', '\u259C',
	'\U0001CD9C', '\U0001CD9D', '\U0001CD9E', '\U0001CD9F', '\U0001CDA0', '\U0001CDA1', '\U0001CDA2', '\U0001CDA3',
	'\U0001CDA4', '\U0001CDA5', '\U0001CDA6', '\U0001CDA7', '\U0001CDA8', '\U0001CDA9', '\U0001CDAA', '\U0001CDAB',
	'\u2582', '\U0001CDAC', '\U0001CDAD', '\U0001CDAE', '\U0001CDAF', '\U0001CDB0', '\U0001CDB1', '\U0001CDB2',
	'\U0001CDB3', '\U0001CDB4', '\U0001CDB5', '\U0001CDB6', '\U0001CDB7', '\U0001CDB8', '\U0001CDB9', '\U0001CDBA',
	'\U0001CDBB', '\U0001CDBC', '\U0001CDBD', '\U0001CDBE', '\U0001CDBF', '\U0001CDC0', '\U0001CDC1', '\U0001CDC2',
	'\U0001CDC3', '\U0001CDC4', '\U0001CDC5', '\U0001CDC6', '\U0001CDC7', '\U0001CDC8', '\U0001CDC9', '\U0001CDCA',
	'\U0001CDCB', '\U0001CDCC', '\U0001CDCD', '\U0001CDCE', '\U0001CDCF', '\U0001CDD0', '\U0001CDD1', '\U0001CDD2',
	'\U0001CDD3', '\U0001CDD4', '\U0001CDD5', '\U0001CDD6', '\U0001CDD7', '\U0001CDD8', '\U0001CDD9', '\U0001CDDA',
	'\u2584', '\U0001CDDB', '\U0001CDDC', '\U0001CDDD', '\U0001CDDE', '\u2599', '\U0001CDDF', '\U0001CDE0',
	'\U0001CDE1', '\U0001CDE2', '\u259F', '\U0001CDE3', '\u2586', '\U0001CDE4', '\U0001CDE5', '\u2588',
}

// 2×4 braille patterns. Row-major bit i maps to dots 1, 4, 2, 5, 3, 6, 7, 8.
var brailleGlyphs = [256]rune{
	'\u2800', '\u2801', '\u2808', '\u2809', '\u2802', '\u2803', '\u280A', '\u280B',
	'\u2810', '\u2811', '\u2818', '\u2819', '\u2812', '\u2813', '\u281A', '\u281B',
	'\u2804', '\u2805', '\u280C', '\u280D', '\u2806', '\u2807', '\u280E', '\u280F',
	'\u2814', '\u2815', '\u281C', '\u281D', '\u2816', '\u2817', '\u281E', '\u281F',
	'\u2820', '\u2821', '\u2828', '\u2829', '\u2822', '\u2823', '\u282A', '\u282B',
	'\u2830', '\u2831', '\u2838', '\u2839', '\u2832', '\u2833', '\u283A', '\u283B',
	'\u2824', '\u2825', '\u282C', '\u282D', '\u2826', '\u2827', '\u282E', '\u282F',
	'\u2834', '\u2835', '\u283C', '\u283D', '\u2836', '\u2837', '\u283E', '\u283F',
	'\u2840', '\u2841', '\u2848', '\u2849', '\u2842', '\u2843', '\u284A', '\u284B',
	'\u2850', '\u2851', '\u2858', '\u2859', '\u2852', '\u2853', '\u285A', '\u285B',
	'\u2844', '\u2845', '\u284C', '\u284D', '\u2846', '\u2847', '\u284E', '\u284F',
	'\u2854', '\u2855', '\u285C', '\u285D', '\u2856', '\u2857', '\u285E', '\u285F',
	'\u2860', '\u2861', '\u2868', '\u2869', '\u2862', '\u2863', '\u286A', '\u286B',
	'\u2870', '\u2871', '\u2878', '\u2879', '\u2872', '\u2873', '\u287A', '\u287B',
	'\u2864', '\u2865', '\u286C', '\u286D', '\u2866', '\u2867', '\u286E', '\u286F',
	'\u2874', '\u2875', '\u287C', '\u287D', '\u2876', '\u2877', '\u287E', '\u287F',
	'\u2880', '\u2881', '\u2888', '\u2889', '\u2882', '\u2883', '\u288A', '\u288B',
	'\u2890', '\u2891', '\u2898', '\u2899', '\u2892', '\u2893', '\u289A', '\u289B',
	'\u2884', '\u2885', '\u288C', '\u288D', '\u2886', '\u2887', '\u288E', '\u288F',
	'\u2894', '\u2895', '\u289C', '\u289D', '\u2896', '\u2897', '\u289E', '\u289F',
	'\u28A0', '\u28A1', '\u28A8', '\u28A9', '\u28A2', '\u28A3', '\u28AA', '\u28AB',
	'\u28B0', '\u28B1', '\u28B8', '\u28B9', '\u28B2', '\u28B3', '\u28BA', '\u28BB',
	'\u28A4', '\u28A5', '\u28AC', '\u28AD', '\u28A6', '\u28A7', '\u28AE', '\u28AF',
	'\u28B4', '\u28B5', '\u28BC', '\u28BD', '\u28B6', '\u28B7', '\u28BE', '\u28BF',
	'\u28C0', '\u28C1', '\u28C8', '\u28C9', '\u28C2', '\u28C3', '\u28CA', '\u28CB',
	'\u28D0', '\u28D1', '\u28D8', '\u28D9', '\u28D2', '\u28D3', '\u28DA', '\u28DB',
	'\u28C4', '\u28C5', '\u28CC', '\u28CD', '\u28C6', '\u28C7', '\u28CE', '\u28CF',
	'\u28D4', '\u28D5', '\u28DC', '\u28DD', '\u28D6', '\u28D7', '\u28DE', '\u28DF',
	'\u28E0', '\u28E1', '\u28E8', '\u28E9', '\u28E2', '\u28E3', '\u28EA', '\u28EB',
	'\u28F0', '\u28F1', '\u28F8', '\u28F9', '\u28F2', '\u28F3', '\u28FA', '\u28FB',
	'\u28E4', '\u28E5', '\u28EC', '\u28ED', '\u28E6', '\u28E7', '\u28EE', '\u28EF',
	'\u28F4', '\u28F5', '\u28FC', '\u28FD', '\u28F6', '\u28F7', '\u28FE', '\u28FF',
}
