package report

const textTemplate = `{% autoescape off %}{% if title %}{{ title }}
{% endif %}{% if palette %}Palette
{% for c in palette %}  {{ forloop.Counter0 }}{% if c.Active %}*{% else %} {% endif %} {{ c.Hex }}  {{ c.RGB }}  {{ c.Lab }}
{% endfor %}{% endif %}{% if hasComparison %}Comparison
  reference  {% if comparison.HasRef %}{{ comparison.Ref.Hex }}  {{ comparison.Ref.RGB }}  {{ comparison.Ref.Lab }}  L* {{ comparison.Ref.Lightness }}{% else %}-{% endif %}
  sampled    {% if comparison.HasSel %}{{ comparison.Sel.Hex }}  {{ comparison.Sel.RGB }}  {{ comparison.Sel.Lab }}  L* {{ comparison.Sel.Lightness }}{% else %}-{% endif %}
  delta E    {% if comparison.DeltaE %}{{ comparison.DeltaE }}  {{ comparison.Label }}{% else %}-{% endif %}
  CIEDE2000  {{ comparison.DeltaE2000|default:"-" }}
{% endif %}{% if history %}History
{% for r in history %}  {{ r.Index }}  {{ r.Time }}  {{ r.Name|default:"Unnamed" }}
     ref {{ r.Ref.Hex }} {{ r.Ref.RGB }} {{ r.Ref.Lab }}
     sel {{ r.Sel.Hex }} {{ r.Sel.RGB }} {{ r.Sel.Lab }}
     delta E {{ r.DeltaE }}  {{ r.Label }}
{% endfor %}{% endif %}{% endautoescape %}`

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ title|default:"Color analysis" }}</title>
</head>
<body>
{% if palette %}<section class="palette">
{% for c in palette %}<div class="palette-item{% if c.Active %} active{% endif %}"><span class="palette-swatch" style="background-color: {{ c.Hex }};"></span><span>{{ c.Hex }}</span></div>
{% endfor %}</section>
{% endif %}{% if hasComparison %}<table class="comparison">
<tr><th></th><th>Reference</th><th>Sampled</th></tr>
<tr><td>HEX</td><td>{{ comparison.Ref.Hex|default:"-" }}</td><td>{{ comparison.Sel.Hex|default:"-" }}</td></tr>
<tr><td>RGB</td><td>{{ comparison.Ref.RGB|default:"-" }}</td><td>{{ comparison.Sel.RGB|default:"-" }}</td></tr>
<tr><td>L*a*b*</td><td>{{ comparison.Ref.Lab|default:"-" }}</td><td>{{ comparison.Sel.Lab|default:"-" }}</td></tr>
<tr><td>&Delta;E</td><td colspan="2">{{ comparison.DeltaE|default:"-" }}</td></tr>
<tr><td>CIEDE2000</td><td colspan="2">{{ comparison.DeltaE2000|default:"-" }}</td></tr>
<tr><td>Interpretation</td><td colspan="2">{% if comparison.Label %}<span class="interpretation-badge {{ comparison.Class }}">{{ comparison.Label }}</span>{% else %}-{% endif %}</td></tr>
</table>
{% endif %}{% if history %}<table class="history">
<thead><tr><th>Sample</th><th>Reference</th><th>Sampled</th><th>&Delta;E</th><th>Interpretation</th></tr></thead>
<tbody>
{% for r in history %}<tr>
<td><b>{{ r.Name|default:"Unnamed" }}</b><br><small>{{ r.Time }}</small></td>
<td><div class="history-swatch" style="background-color: {{ r.Ref.Hex }};"></div>{{ r.Ref.Hex }}<br><small>{{ r.Ref.RGB }}<br>{{ r.Ref.Lab }}</small></td>
<td><div class="history-swatch" style="background-color: {{ r.Sel.Hex }};"></div>{{ r.Sel.Hex }}<br><small>{{ r.Sel.RGB }}<br>{{ r.Sel.Lab }}</small></td>
<td>{{ r.DeltaE }}</td>
<td><span class="interpretation-badge {{ r.Class }}">{{ r.Label }}</span></td>
</tr>
{% endfor %}</tbody>
</table>
{% endif %}</body>
</html>
`
